package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(firstCaseCmd)
}

var firstCaseCmd = &cobra.Command{
	Use:   "first-case <country>",
	Short: "Prints the date and count of a country's first confirmed case.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		first, err := service.FirstCase(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Country", "Cases", "Status", "Date"})
		t.AppendRow(table.Row{
			first.Country,
			first.Cases,
			first.Status,
			first.Date.Format(dateFormat),
		})
		t.Render()
		return nil
	},
}
