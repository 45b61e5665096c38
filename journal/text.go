package journal

import (
	"fmt"
	"strings"
	"time"
)

// Entry is the full journal form: narrative fields plus the fill-panel
// numbers, all kept as display strings. The in-progress entry is
// persisted as the draft so a restart does not lose a half-written
// journal.
type Entry struct {
	Date          string   `json:"date"`
	Session       string   `json:"session"`
	SessionType   string   `json:"sessionType"`
	Instrument    string   `json:"instrument"`
	Timeframe     string   `json:"timeframe"`
	Playbook      string   `json:"playbook"`
	PlaybookGrade int      `json:"playbookGrade"`
	SetupType     string   `json:"setupType"`
	Bullets       []string `json:"bullets"`
	Side          string   `json:"side"`
	Entry         string   `json:"entry"`
	StopLoss      string   `json:"stopLoss"`
	TakeProfit1   string   `json:"takeProfit1"`
	TakeProfit2   string   `json:"takeProfit2"`
	Exit          string   `json:"exit,omitempty"`
	ExitReason    string   `json:"exitReason,omitempty"`
	Contracts     string   `json:"contracts"`
	AccountBal    string   `json:"accountBalance"`
	Risk          string   `json:"risk"`
	RewardPot     string   `json:"rewardPotential"`
	Positives     []string `json:"positives"`
	Negatives     []string `json:"negatives"`
	Tags          []string `json:"tags"`

	// Fill-panel figures copied from the calculator output.
	ContractsTraded   string `json:"contractsTraded"`
	Points            string `json:"points"`
	Ticks             string `json:"ticks"`
	TicksPerContract  string `json:"ticksPerContract"`
	CommissionsFees   string `json:"commissionsAndFees"`
	NetROI            string `json:"netROI"`
	GrossPL           string `json:"grossPL"`
	AdjustedCost      string `json:"adjustedCost"`
	PriceMAE          string `json:"priceMAE"`
	PriceMFE          string `json:"priceMFE"`
	TradeRating       int    `json:"tradeRating"`
	ProfitTarget      string `json:"profitTarget"`
	InitialTarget     string `json:"initialTarget"`
	TradeRisk         string `json:"tradeRisk"`
	PlannedRMultiple  string `json:"plannedRMultiple"`
	RealizedRMultiple string `json:"realizedRMultiple"`
	AverageEntry      string `json:"averageEntry"`
	AverageExit       string `json:"averageExit"`
	EntryTime         string `json:"entryTime"`
	ExitTime          string `json:"exitTime"`
	BestExitPrice     string `json:"bestExitPrice"`
	BestExitTime      string `json:"bestExitTime"`
}

// FormatEntryText renders an entry as the fixed share/export template.
// Blank bullets, positives and negatives are dropped; the exit section
// appears only once an exit price is recorded.
func FormatEntryText(e Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📅 Date: %s\n", e.Date))
	b.WriteString(fmt.Sprintf("🕒 Session: %s\n", e.Session))
	b.WriteString(fmt.Sprintf("📊 Session Type: %s\n", e.SessionType))
	b.WriteString(fmt.Sprintf("💰 Instrument: %s\n", e.Instrument))
	b.WriteString(fmt.Sprintf("⏰ Timeframe: %s\n", e.Timeframe))

	playbook := fmt.Sprintf("📖 Playbook: %s", e.Playbook)
	if e.PlaybookGrade > 0 {
		playbook += fmt.Sprintf(" (%d/5 ⭐)", e.PlaybookGrade)
	}
	b.WriteString(playbook + "\n")
	b.WriteString(fmt.Sprintf("Setup Type: %s\n", e.SetupType))
	b.WriteString(prefixLines(e.Bullets, "📍 "))

	b.WriteString("\n📈 Trade Details\n\n")
	b.WriteString(fmt.Sprintf("Side: %s\n\n", e.Side))
	b.WriteString(fmt.Sprintf("Entry: %s\n\n", e.Entry))
	b.WriteString(fmt.Sprintf("Stop Loss: %s\n\n", e.StopLoss))
	b.WriteString(fmt.Sprintf("Take Profit: TP1 – %s, TP2 – %s", e.TakeProfit1, e.TakeProfit2))
	if e.Exit != "" {
		b.WriteString(fmt.Sprintf("\nExit: %s", e.Exit))
		if e.ExitReason != "" {
			b.WriteString(fmt.Sprintf("\nExit Reason: %s", e.ExitReason))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Contracts: %s\n\n", e.Contracts))
	b.WriteString(fmt.Sprintf("Risk: %s\n\n", e.Risk))
	b.WriteString(fmt.Sprintf("Reward Potential: %s\n\n", e.RewardPot))

	b.WriteString("🎯 Execution Summary\n")
	b.WriteString(prefixLines(e.Positives, "✅ "))
	b.WriteString(prefixLines(e.Negatives, "❌ "))

	b.WriteString("\n🧠 Mental & Rule-Based Tags\n\n")
	b.WriteString(strings.Join(e.Tags, "\n"))

	return b.String()
}

func prefixLines(items []string, prefix string) string {
	var b strings.Builder
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		b.WriteString(prefix + item + "\n")
	}
	return b.String()
}

// ToTrade converts a saved journal entry into a historical trade
// record. New trades start Pending with an unset R:R until the history
// view fills in the outcome.
func (e Entry) ToTrade(id string, now time.Time) Trade {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return Trade{
		ID:          id,
		Date:        e.Date,
		SetupType:   e.SetupType,
		Side:        e.Side,
		Entry:       e.Entry,
		StopLoss:    e.StopLoss,
		TakeProfit1: e.TakeProfit1,
		TakeProfit2: e.TakeProfit2,
		Outcome:     Pending,
		RRRatio:     0,
		Tags:        tags,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}
}

// DefaultEntry returns the seeded journal form shown on first load.
func DefaultEntry(now time.Time) Entry {
	return Entry{
		Date:      now.Format("2006-01-02"),
		Session:   "London",
		SetupType: "4H MGC Trendline Break",
		Bullets: []string{
			"Clean trendline formed over multiple touches",
			"Volume confirmation on break",
			"SIL support level nearby",
		},
		Side:        "LONG",
		Entry:       "1.2750",
		StopLoss:    "1.2700",
		TakeProfit1: "1.2850",
		TakeProfit2: "1.2950",
		Contracts:   "0.5 lots",
		AccountBal:  "5000",
		Risk:        "$100.00",
		RewardPot:   "3:1 RR",
		Positives: []string{
			"Waited for proper confirmation",
			"Risk management followed",
		},
		Negatives: []string{
			"Could have been more patient on entry",
		},
		Tags: []string{"Patience", "Risk Management", "Technical Analysis"},
	}
}
