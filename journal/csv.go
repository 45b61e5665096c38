package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{
	"Date",
	"Setup Type",
	"Side",
	"Entry",
	"Stop Loss",
	"Take Profit 1",
	"Take Profit 2",
	"Outcome",
	"R:R Ratio",
	"Tags",
	"Notes",
	"Created At",
}

// WriteCSV renders trades in the history-export layout: every text
// field double-quoted, the numeric R:R bare, tags joined with "; ".
// The quoting is unconditional so spreadsheet imports are stable, which
// is why this does not use encoding/csv.
func WriteCSV(w io.Writer, trades []Trade) error {
	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")+"\n"); err != nil {
		return err
	}

	for _, t := range trades {
		row := []string{
			q(t.Date),
			q(t.SetupType),
			q(t.Side),
			q(t.Entry),
			q(t.StopLoss),
			q(t.TakeProfit1),
			q(t.TakeProfit2),
			q(string(t.Outcome)),
			strconv.FormatFloat(t.RRRatio, 'f', -1, 64),
			q(strings.Join(t.Tags, "; ")),
			q(t.Notes),
			q(t.CreatedAt),
		}
		if _, err := io.WriteString(w, strings.Join(row, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// ExportFilename builds the download name, e.g.
// "trading-history-2026-08-28.csv".
func ExportFilename(basename string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", basename, now.UTC().Format("2006-01-02"))
}

// ExportCSVFile writes trades to dir using the standard filename and
// returns the full path.
func ExportCSVFile(dir, basename string, trades []Trade, now time.Time) (string, error) {
	path := filepath.Join(dir, ExportFilename(basename, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, trades); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func q(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
