package cmd

import (
	"fmt"
	"sort"

	"covidtrends-backend/lib/timeseries"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	compareField string
	compareYear  int
	compareMonth int
)

func init() {
	compareCmd.Flags().StringVar(
		&compareField, "field", timeseries.FieldNewCases,
		"column to summarize (Confirmed, Deaths, Recovered, Active, NewCases, NewDeaths)",
	)
	compareCmd.Flags().IntVar(&compareYear, "year", 0, "restrict to one calendar year")
	compareCmd.Flags().IntVar(&compareMonth, "month", 0, "restrict to one calendar month")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:   "compare [country...]",
	Short: "Prints per-country summary statistics over one derived column.",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = config.Countries
		}
		if len(names) == 0 {
			return fmt.Errorf("no countries given and none configured")
		}

		dataset, err := service.Dataset(cmd.Context(), names)
		if err != nil {
			return err
		}
		dataset = dataset.Filter(timeseries.Filter{
			Year:  compareYear,
			Month: compareMonth,
		})

		summaries, err := dataset.SummarizeByCountry(compareField)
		if err != nil {
			return err
		}

		countries := make([]string, 0, len(summaries))
		for country := range summaries {
			countries = append(countries, country)
		}
		sort.Strings(countries)

		t := newTable()
		t.AppendHeader(table.Row{
			"Country", "Days", "Mean", "Median", "SD", "Q1", "Q3", "IQR", "Max",
		})
		for _, country := range countries {
			s := summaries[country]
			t.AppendRow(table.Row{
				country,
				s.Count,
				fmt.Sprintf("%.1f", s.Mean),
				fmt.Sprintf("%.1f", s.Median),
				fmt.Sprintf("%.1f", s.StdDev),
				fmt.Sprintf("%.1f", s.Q1),
				fmt.Sprintf("%.1f", s.Q3),
				fmt.Sprintf("%.1f", s.IQR),
				fmt.Sprintf("%.0f", s.Max),
			})
		}
		t.Render()
		return nil
	},
}
