package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal with P&L and risk calculation",
	Long: `Tradebook is a local-first trading journal written in Go.

It provides tools for:
  - Pre-trade discipline checklists
  - Journaling trades with setup, tags, and outcome tracking
  - P&L, tick, R-multiple, and MAE/MFE calculation
  - Win-rate and R:R statistics with a performance grade
  - Filtering history and exporting to CSV
  - A local HTTP API for the web UI

Complete documentation is available at https://github.com/rustyeddy/tradebook`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default built-in settings)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (journal.Store, error) {
	switch cfg.Storage.Type {
	case "badger":
		return journal.NewBadger(cfg.Storage.Dir)
	default:
		return journal.NewSQLite(cfg.Storage.DBPath)
	}
}
