package cmd

import (
	"covidtrends-backend/services/casestore"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cachedCmd)
}

var cachedCmd = &cobra.Command{
	Use:   "cached [country]",
	Short: "Prints rows previously saved with `history --save`.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openStore()
		if err != nil {
			return err
		}
		defer database.Close()
		store := casestore.NewService(database)

		if len(args) == 1 {
			records, err := store.PullCountry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			renderDerived(records)
			return nil
		}

		dataset, err := store.Pull(cmd.Context())
		if err != nil {
			return err
		}
		renderDerived(dataset)
		return nil
	},
}
