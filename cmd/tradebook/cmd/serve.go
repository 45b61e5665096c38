package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API",
	Long: `Start the HTTP server backing the web UI.

The server exposes the calculator, trade history, statistics,
checklist, and CSV export endpoints on the configured address.

Example:
  tradebook serve
  tradebook serve --addr 127.0.0.1:9000`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info("starting server",
		slog.String("addr", cfg.Server.Addr),
		slog.String("storage", cfg.Storage.Type),
	)

	handler := api.NewHandler(store, cfg, logger)
	return handler.StartServer()
}
