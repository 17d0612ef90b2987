package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"covidtrends-backend/lib/configutil"
	"covidtrends-backend/lib/countrydir"
	"covidtrends-backend/lib/covidapi"
	"covidtrends-backend/lib/restyutil"
	"covidtrends-backend/lib/telemetry"
	"covidtrends-backend/services/casedata"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl string `json:"base_url"`
	// countries compared by default when a command takes none
	Countries []string `json:"countries"`
	// dumps from previous runs are cleared from this directory on startup
	DebugHttpDir string `json:"debug_http_dir"`
	DbPath       string `json:"db_path"`
}

var config Config
var client *covidapi.Client
var service casedata.Service

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "covidtrends-cli",
	Short: "covidtrends-cli fetches and compares COVID-19 country statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initSlog(verbose)

		var err error
		config, err = configutil.ReadRecursively[Config]("covidtrends.json5")
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if config.BaseUrl == "" {
			config.BaseUrl = covidapi.DefaultBaseUrl
		}
		if config.DbPath == "" {
			config.DbPath = "covidtrends.db"
		}

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "covidtrends-cli")
		if err == nil {
			telemetry.InstrumentPerfStats(cmd.Context())
			cobra.OnFinalize(func() {
				tel.Shutdown(context.Background())
			})
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		client = covidapi.NewClient(config.BaseUrl)
		if config.DebugHttpDir != "" {
			client.SetInstrumentOutput(
				restyutil.NewFilesystemOutput(config.DebugHttpDir),
			)
		}

		dir, err := countrydir.Load(cmd.Context(), client)
		if err != nil {
			return fmt.Errorf("failed to load country directory: %w", err)
		}
		service = casedata.NewService(client, dir)
		return nil
	},
	SilenceUsage: true,
}

func initSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"enable debug logging and http dumps",
	)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
