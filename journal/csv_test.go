package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrade() Trade {
	return Trade{
		ID:          "01J0000000000000000000TEST",
		Date:        "2026-08-28",
		SetupType:   "4H MGC Trendline Break",
		Side:        "SHORT",
		Entry:       "3404.9",
		StopLoss:    "3407.0",
		TakeProfit1: "3398.0",
		TakeProfit2: "3390.0",
		Outcome:     Win,
		RRRatio:     3.29,
		Tags:        []string{"Patience", "Risk Management"},
		CreatedAt:   "2026-08-28T14:30:00Z",
		Notes:       "Clean break, held through pullback",
	}
}

func TestWriteCSV_HeaderAndRow(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, []Trade{sampleTrade()}))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"Date,Setup Type,Side,Entry,Stop Loss,Take Profit 1,Take Profit 2,Outcome,R:R Ratio,Tags,Notes,Created At",
		lines[0])

	assert.Equal(t,
		`"2026-08-28","4H MGC Trendline Break","SHORT","3404.9","3407.0","3398.0","3390.0","Win",3.29,"Patience; Risk Management","Clean break, held through pullback","2026-08-28T14:30:00Z"`,
		lines[1])
}

func TestWriteCSV_RRUnquoted(t *testing.T) {
	t.Parallel()

	trade := sampleTrade()
	trade.RRRatio = 0

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, []Trade{trade}))

	assert.Contains(t, b.String(), `"Win",0,"Patience`)
}

func TestWriteCSV_EscapesEmbeddedQuotes(t *testing.T) {
	t.Parallel()

	trade := sampleTrade()
	trade.Notes = `broke the "clean" trendline`

	var b strings.Builder
	require.NoError(t, WriteCSV(&b, []Trade{trade}))

	assert.Contains(t, b.String(), `"broke the ""clean"" trendline"`)
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "trading-history-2026-08-28.csv", ExportFilename("trading-history", now))
}

func TestExportCSVFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	path, err := ExportCSVFile(dir, "trading-history", []Trade{sampleTrade()}, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "trading-history-2026-08-28.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Setup Type,Side,"))
}
