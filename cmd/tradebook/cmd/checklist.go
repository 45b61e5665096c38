package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/checklist"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Work through the pre-trade discipline checklist",
	Long: `Show and update the pre-trade checklist.

Subcommands:
  show   - Print the checklist with current completion state
  check  - Toggle an item by ID
  reset  - Uncheck everything

Examples:
  tradebook checklist show
  tradebook checklist check tl1
  tradebook checklist reset`,
}

var checklistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the checklist with current completion state",
	Args:  cobra.NoArgs,
	RunE:  runChecklistShow,
}

var checklistCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Toggle a checklist item",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistCheck,
}

var checklistResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every item",
	Args:  cobra.NoArgs,
	RunE:  runChecklistReset,
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.AddCommand(checklistShowCmd)
	checklistCmd.AddCommand(checklistCheckCmd)
	checklistCmd.AddCommand(checklistResetCmd)
}

func runChecklistShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	state, err := store.LoadChecklist()
	if err != nil {
		return fmt.Errorf("load checklist: %w", err)
	}

	for _, sec := range checklist.Sections {
		fmt.Printf("\n%s %s\n", sec.Badge, sec.Title)
		for _, g := range sec.Groups {
			if g.Category != "" {
				fmt.Printf("  %s\n", g.Category)
			}
			for _, item := range g.Items {
				mark := " "
				if state[item.ID] {
					mark = "x"
				}
				indent := "  "
				if item.Indent {
					indent = "      "
				}
				fmt.Printf("%s[%s] %-9s %s\n", indent, mark, item.ID, item.Text)
			}
		}
	}

	p := checklist.ProgressOf(state)
	fmt.Printf("\n%d of %d complete\n", p.Checked, p.Total)
	return nil
}

func runChecklistCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	state, err := store.LoadChecklist()
	if err != nil {
		return fmt.Errorf("load checklist: %w", err)
	}

	checked := checklist.State(state).Toggle(args[0])
	if err := store.SaveChecklist(state); err != nil {
		return fmt.Errorf("save checklist: %w", err)
	}

	mark := "unchecked"
	if checked {
		mark = "checked"
	}
	fmt.Printf("✓ %s %s\n", args[0], mark)
	return nil
}

func runChecklistReset(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.SaveChecklist(map[string]bool{}); err != nil {
		return fmt.Errorf("save checklist: %w", err)
	}

	fmt.Println("✓ Checklist reset")
	return nil
}
