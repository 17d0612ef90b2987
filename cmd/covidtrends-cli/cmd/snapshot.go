package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [country...]",
	Short: "Prints the latest totals for the given countries, side by side.",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = config.Countries
		}
		if len(names) == 0 {
			return fmt.Errorf("no countries given and none configured")
		}

		rows, err := service.Snapshot(cmd.Context(), names)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{
			"Country", "NewConfirmed", "TotalConfirmed", "NewDeaths", "TotalDeaths", "Date",
		})
		for _, row := range rows {
			t.AppendRow(table.Row{
				row.Country,
				row.NewConfirmed,
				row.TotalConfirmed,
				row.NewDeaths,
				row.TotalDeaths,
				row.Date.Format(dateFormat),
			})
		}
		t.Render()
		return nil
	},
}
