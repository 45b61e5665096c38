package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trade history to CSV",
	Long: `Write the (optionally filtered) trade history to a CSV file
named <basename>-<date>.csv in the output directory.

Example:
  tradebook export --dir ~/exports --outcome Win`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportDir     string
	exportFilters filterFlags
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "output directory")
	addFilterFlags(exportCmd, &exportFilters)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	trades, err := store.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	trades = journal.Filter(trades, exportFilters.toFilters())

	if len(trades) == 0 {
		return fmt.Errorf("no trades to export")
	}

	path, err := journal.ExportCSVFile(exportDir, cfg.Trading.ExportBasename, trades, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d trades to %s\n", len(trades), path)
	return nil
}
