package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect or render the saved journal draft",
	Long: `Work with the persisted journal draft.

Subcommands:
  show - Print the draft as JSON
  text - Render the draft with the share template

Example:
  tradebook draft text > journal-entry.txt`,
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the draft as JSON",
	Args:  cobra.NoArgs,
	RunE:  runDraftShow,
}

var draftTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Render the draft with the share template",
	Args:  cobra.NoArgs,
	RunE:  runDraftText,
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftTextCmd)
}

func loadDraft() (journal.Entry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return journal.Entry{}, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return journal.Entry{}, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	draft, ok, err := store.LoadDraft()
	if err != nil {
		return journal.Entry{}, fmt.Errorf("load draft: %w", err)
	}
	if !ok {
		draft = journal.DefaultEntry(time.Now())
	}
	return draft, nil
}

func runDraftShow(cmd *cobra.Command, args []string) error {
	draft, err := loadDraft()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(draft)
}

func runDraftText(cmd *cobra.Command, args []string) error {
	draft, err := loadDraft()
	if err != nil {
		return err
	}

	fmt.Println(journal.FormatEntryText(draft))
	return nil
}
