package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(countriesCmd)
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Prints every country known to the api with its slug.",
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable()
		t.AppendHeader(table.Row{"Country", "Slug", "ISO2"})
		for _, c := range service.Countries() {
			t.AppendRow(table.Row{c.Country, c.Slug, c.ISO2})
		}
		t.Render()
	},
}
