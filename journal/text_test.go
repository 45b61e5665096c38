package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryText_FullEntry(t *testing.T) {
	t.Parallel()

	entry := Entry{
		Date:          "2026-08-28",
		Session:       "London",
		SessionType:   "Trend Day",
		Instrument:    "MGC1!",
		Timeframe:     "1H",
		Playbook:      "Trendline Break",
		PlaybookGrade: 4,
		SetupType:     "4H MGC Trendline Break",
		Bullets:       []string{"Clean trendline", "", "Volume confirmation"},
		Side:          "LONG",
		Entry:         "3404.9",
		StopLoss:      "3402.0",
		TakeProfit1:   "3410.0",
		TakeProfit2:   "3415.0",
		Exit:          "3409.5",
		ExitReason:    "TP1 front-run",
		Contracts:     "2",
		Risk:          "$58.00",
		RewardPot:     "1.8:1 RR",
		Positives:     []string{"Waited for confirmation"},
		Negatives:     []string{"Sized down unnecessarily"},
		Tags:          []string{"Patience", "Risk Management"},
	}

	text := FormatEntryText(entry)

	assert.Contains(t, text, "📅 Date: 2026-08-28")
	assert.Contains(t, text, "📖 Playbook: Trendline Break (4/5 ⭐)")
	assert.Contains(t, text, "📍 Clean trendline\n📍 Volume confirmation")
	assert.Contains(t, text, "Take Profit: TP1 – 3410.0, TP2 – 3415.0\nExit: 3409.5\nExit Reason: TP1 front-run")
	assert.Contains(t, text, "✅ Waited for confirmation")
	assert.Contains(t, text, "❌ Sized down unnecessarily")
	assert.Contains(t, text, "🧠 Mental & Rule-Based Tags\n\nPatience\nRisk Management")
	// Blank bullets are dropped, not rendered as bare markers.
	assert.NotContains(t, text, "📍 \n")
}

func TestFormatEntryText_NoExitOmitsSection(t *testing.T) {
	t.Parallel()

	entry := Entry{TakeProfit1: "10", TakeProfit2: "20"}
	text := FormatEntryText(entry)

	assert.NotContains(t, text, "Exit:")
	assert.NotContains(t, text, "Exit Reason:")
	assert.Contains(t, text, "Take Profit: TP1 – 10, TP2 – 20\n")
}

func TestFormatEntryText_UngradedPlaybookHasNoStars(t *testing.T) {
	t.Parallel()

	text := FormatEntryText(Entry{Playbook: "Range Fade"})
	assert.Contains(t, text, "📖 Playbook: Range Fade\n")
	assert.NotContains(t, text, "⭐")
}

func TestEntryToTrade(t *testing.T) {
	t.Parallel()

	entry := Entry{
		Date:        "2026-08-28",
		SetupType:   "4H MGC Trendline Break",
		Side:        "SHORT",
		Entry:       "3404.9",
		StopLoss:    "3407.0",
		TakeProfit1: "3398.0",
		TakeProfit2: "3390.0",
		Tags:        []string{"Patience"},
	}
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	trade := entry.ToTrade("01TESTID", now)

	assert.Equal(t, "01TESTID", trade.ID)
	assert.Equal(t, Pending, trade.Outcome)
	assert.InDelta(t, 0.0, trade.RRRatio, 1e-9)
	assert.Equal(t, "2026-08-28T14:30:00Z", trade.CreatedAt)
	assert.Equal(t, entry.SetupType, trade.SetupType)
	assert.Equal(t, []string{"Patience"}, trade.Tags)
}

func TestEntryToTrade_NilTagsBecomeEmpty(t *testing.T) {
	t.Parallel()

	trade := Entry{}.ToTrade("01X", time.Now())
	require.NotNil(t, trade.Tags)
	assert.Empty(t, trade.Tags)
}

func TestDefaultEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	e := DefaultEntry(now)

	assert.Equal(t, "2026-08-28", e.Date)
	assert.Equal(t, "London", e.Session)
	assert.Equal(t, "LONG", e.Side)
	assert.True(t, strings.HasPrefix(e.SetupType, "4H MGC"))
	assert.NotEmpty(t, e.Bullets)
	assert.NotEmpty(t, e.Tags)
}
