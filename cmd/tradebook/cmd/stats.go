package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win rate, average R:R, and performance grade",
	Long: `Aggregate the trade history into performance statistics.

Pending trades are excluded. The same filter flags as 'journal list'
narrow the set being graded.

Example:
  tradebook stats --setup "4H MGC Trendline Break" --from 2026-01-01`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var statsFilters filterFlags

func init() {
	rootCmd.AddCommand(statsCmd)
	addFilterFlags(statsCmd, &statsFilters)
}

func runStats(cmd *cobra.Command, args []string) error {
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
	trades = journal.Filter(trades, statsFilters.toFilters())

	stats := journal.Statistics(trades)

	fmt.Printf("Completed trades:  %d\n", stats.TotalTrades)
	fmt.Printf("Win rate:          %.2f%%\n", stats.WinRate)
	fmt.Printf("Average R:R:       %.2f\n", stats.AverageRR)
	fmt.Printf("Grade:             %s\n", stats.Grade)
	return nil
}
