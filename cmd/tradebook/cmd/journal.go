package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/pkg/id"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage the trade history",
	Long: `Add, list, update, and delete historical trades.

Subcommands:
  add    - Record a new trade (starts Pending)
  list   - List trades, optionally filtered
  set    - Update a trade's outcome, R:R ratio, or notes
  delete - Remove a trade by ID

Examples:
  tradebook journal add --date 2026-08-28 --setup "4H MGC Trendline Break" --side LONG --entry 3404.9
  tradebook journal list --outcome Win --tags Patience
  tradebook journal set <trade-id> --outcome Win --rr 2.5
  tradebook journal delete <trade-id>`,
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Args:  cobra.NoArgs,
	RunE:  runJournalAdd,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades, optionally filtered",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalSetCmd = &cobra.Command{
	Use:   "set <trade-id>",
	Short: "Update a trade's outcome, R:R ratio, or notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSet,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Remove a trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDelete,
}

var journalFlags struct {
	date    string
	setup   string
	side    string
	entry   string
	stop    string
	tp1     string
	tp2     string
	tags    string
	notes   string
	outcome string
	rr      float64
	filters filterFlags
	yes     bool
}

type filterFlags struct {
	setupType string
	outcome   string
	tags      string
	dateFrom  string
	dateTo    string
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalSetCmd)
	journalCmd.AddCommand(journalDeleteCmd)

	f := journalAddCmd.Flags()
	f.StringVar(&journalFlags.date, "date", time.Now().Format("2006-01-02"), "trade date (YYYY-MM-DD)")
	f.StringVar(&journalFlags.setup, "setup", "", "setup type (required)")
	f.StringVar(&journalFlags.side, "side", "LONG", "LONG or SHORT")
	f.StringVar(&journalFlags.entry, "entry", "", "entry price (required)")
	f.StringVar(&journalFlags.stop, "stop", "", "stop loss price")
	f.StringVar(&journalFlags.tp1, "tp1", "", "take profit 1")
	f.StringVar(&journalFlags.tp2, "tp2", "", "take profit 2")
	f.StringVar(&journalFlags.tags, "tags", "", "comma-separated tags")
	f.StringVar(&journalFlags.notes, "notes", "", "trade notes")
	journalAddCmd.MarkFlagRequired("setup")
	journalAddCmd.MarkFlagRequired("entry")

	addFilterFlags(journalListCmd, &journalFlags.filters)

	sf := journalSetCmd.Flags()
	sf.StringVar(&journalFlags.outcome, "outcome", "", "Win, Loss, Breakeven, or Pending")
	sf.Float64Var(&journalFlags.rr, "rr", 0, "realized R:R ratio")
	sf.StringVar(&journalFlags.notes, "notes", "", "trade notes")

	journalDeleteCmd.Flags().BoolVarP(&journalFlags.yes, "yes", "y", false, "skip confirmation")
}

func addFilterFlags(c *cobra.Command, ff *filterFlags) {
	f := c.Flags()
	f.StringVar(&ff.setupType, "setup", "", "filter by setup type")
	f.StringVar(&ff.outcome, "outcome", "", "filter by outcome")
	f.StringVar(&ff.tags, "tags", "", "filter by tags (comma-separated, any match)")
	f.StringVar(&ff.dateFrom, "from", "", "filter from date (YYYY-MM-DD)")
	f.StringVar(&ff.dateTo, "to", "", "filter to date (YYYY-MM-DD)")
}

func (ff filterFlags) toFilters() journal.Filters {
	f := journal.Filters{
		SetupType: ff.setupType,
		Outcome:   ff.outcome,
		DateFrom:  ff.dateFrom,
		DateTo:    ff.dateTo,
	}
	if ff.tags != "" {
		for _, t := range strings.Split(ff.tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}
	return f
}

func runJournalAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	tags := []string{}
	if journalFlags.tags != "" {
		for _, t := range strings.Split(journalFlags.tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	trade := journal.Trade{
		ID:          id.New(),
		Date:        journalFlags.date,
		SetupType:   journalFlags.setup,
		Side:        journalFlags.side,
		Entry:       journalFlags.entry,
		StopLoss:    journalFlags.stop,
		TakeProfit1: journalFlags.tp1,
		TakeProfit2: journalFlags.tp2,
		Outcome:     journal.Pending,
		Tags:        tags,
		Notes:       journalFlags.notes,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := store.SaveTrade(trade); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("✓ Recorded trade %s (%s %s @ %s)\n", trade.ID, trade.Side, trade.SetupType, trade.Entry)
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
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
	trades = journal.Filter(trades, journalFlags.filters.toFilters())

	if len(trades) == 0 {
		fmt.Println("No trades.")
		return nil
	}

	for _, t := range trades {
		fmt.Printf("%s  %-10s  %-5s  %-30s  %-9s  %.2fR  [%s]\n",
			t.ID, t.Date, t.Side, t.SetupType, t.Outcome, t.RRRatio,
			strings.Join(t.Tags, ", "))
	}
	return nil
}

func runJournalSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	var upd journal.Update
	if cmd.Flags().Changed("outcome") {
		o := journal.Outcome(journalFlags.outcome)
		switch o {
		case journal.Win, journal.Loss, journal.Breakeven, journal.Pending:
		default:
			return fmt.Errorf("invalid outcome %q", journalFlags.outcome)
		}
		upd.Outcome = &o
	}
	if cmd.Flags().Changed("rr") {
		upd.RRRatio = &journalFlags.rr
	}
	if cmd.Flags().Changed("notes") {
		upd.Notes = &journalFlags.notes
	}
	if upd.Outcome == nil && upd.RRRatio == nil && upd.Notes == nil {
		return fmt.Errorf("nothing to update: pass --outcome, --rr, or --notes")
	}

	if err := store.UpdateTrade(args[0], upd); err != nil {
		return fmt.Errorf("update trade: %w", err)
	}

	fmt.Printf("✓ Updated trade %s\n", args[0])
	return nil
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	if !journalFlags.yes {
		fmt.Printf("Delete trade %s? This cannot be undone. [y/N]: ", args[0])
		var answer string
		fmt.Scanln(&answer)
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("✓ Deleted trade %s\n", args[0])
	return nil
}
