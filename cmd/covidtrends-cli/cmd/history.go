package cmd

import (
	"database/sql"

	"covidtrends-backend/lib/timeseries"
	"covidtrends-backend/services/casestore"
	"covidtrends-backend/services/casestore/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historySave bool

func init() {
	historyCmd.Flags().BoolVar(
		&historySave, "save", false,
		"persist the derived rows into the local database",
	)
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history <country>",
	Short: "Prints a country's full daily history with derived metrics.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := service.FullHistory(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		derived := timeseries.DeriveDaily(history)

		if historySave {
			database, err := openStore()
			if err != nil {
				return err
			}
			defer database.Close()

			store := casestore.NewService(database)
			err = store.Replace(cmd.Context(), args[0], derived)
			if err != nil {
				return err
			}
		}

		renderDerived(derived)
		return nil
	},
}

func openStore() (*sql.DB, error) {
	database, err := sql.Open("sqlite", config.DbPath)
	if err != nil {
		return nil, err
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func renderDerived(records []timeseries.DerivedRecord) {
	t := newTable()
	t.AppendHeader(table.Row{
		"Country", "Date", "Confirmed", "Deaths", "Recovered", "Active", "NewCases", "NewDeaths",
	})
	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.Country,
			rec.Date.Format(dateFormat),
			rec.Confirmed,
			rec.Deaths,
			rec.Recovered,
			rec.Active,
			rec.NewCases,
			rec.NewDeaths,
		})
	}
	t.Render()
}
