// Package cli implements the scorectl command-line tool for reading the
// club's score sheets directly, without running the service.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/helset/gamenight/internal/adapters/fetch"
	service "github.com/helset/gamenight/internal/app"
	"github.com/helset/gamenight/internal/config"
	"github.com/helset/gamenight/pkg/logger"
)

var (
	dataFolder string
	firstYear  int
)

var rootCmd = &cobra.Command{
	Use:   "scorectl",
	Short: "Game-night scoreboard tool",
	Long:  "Fetch the club's split score sheets and print standings and the hall of fame.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFolder, "data-folder", "", "URL prefix of the split CSV files (overrides config)")
	rootCmd.PersistentFlags().IntVar(&firstYear, "first-year", 0, "first hall of fame year (overrides config)")

	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(hallOfFameCmd)
}

// newService builds a Service from layered config plus CLI flag overrides.
func newService(cmd *cobra.Command) (*service.Service, *config.Config, error) {
	if err := logger.Init(); err != nil {
		return nil, nil, fmt.Errorf("init logging: %w", err)
	}
	_ = logger.SetLevelString("warn")

	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if dataFolder != "" {
		cfg.DataFolder = dataFolder
	}
	if firstYear > 0 {
		cfg.FirstYear = firstYear
	}

	svc := service.New(
		service.WithFetcher(fetch.NewClient(
			fetch.WithTimeout(time.Duration(cfg.FetchTimeoutMS)*time.Millisecond),
		)),
		service.WithDataFolder(cfg.DataFolder),
		service.WithFirstYear(cfg.FirstYear),
		service.WithHallFetchWorkers(cfg.HallFetchWorkers),
	)
	return svc, cfg, nil
}
