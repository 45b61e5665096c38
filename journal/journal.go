// Package journal keeps the trade history: the persisted records, the
// storage backends, aggregate statistics, filtering and export. Prices
// live here as display strings; the numeric work happens in calc.
package journal

// Outcome is the recorded result of a historical trade.
type Outcome string

const (
	Win       Outcome = "Win"
	Loss      Outcome = "Loss"
	Breakeven Outcome = "Breakeven"
	Pending   Outcome = "Pending"
)

// Trade is one persisted journal record. Price fields are kept as the
// display strings the user typed; they are never re-parsed for
// arithmetic, only echoed back and exported.
type Trade struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	SetupType   string   `json:"setupType"`
	Side        string   `json:"side"`
	Entry       string   `json:"entry"`
	StopLoss    string   `json:"stopLoss"`
	TakeProfit1 string   `json:"takeProfit1"`
	TakeProfit2 string   `json:"takeProfit2"`
	Outcome     Outcome  `json:"outcome"`
	RRRatio     float64  `json:"rrRatio"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	Notes       string   `json:"notes,omitempty"`
}

// Update is a partial mutation of a trade from the history view. Only
// outcome, realized R:R and notes are editable after the fact; nil
// fields are left untouched.
type Update struct {
	Outcome *Outcome `json:"outcome,omitempty"`
	RRRatio *float64 `json:"rrRatio,omitempty"`
	Notes   *string  `json:"notes,omitempty"`
}

// Store is the persistence boundary. Both backends keep trades newest
// first, matching insertion order of the journal form.
type Store interface {
	SaveTrade(Trade) error
	GetTrade(id string) (Trade, error)
	ListTrades() ([]Trade, error)
	UpdateTrade(id string, upd Update) error
	DeleteTrade(id string) error

	// The current unsaved journal form, persisted across restarts.
	SaveDraft(Entry) error
	LoadDraft() (Entry, bool, error)

	// Pre-trade checklist completion state, item ID -> checked.
	SaveChecklist(map[string]bool) error
	LoadChecklist() (map[string]bool, error)

	Close() error
}

func (t *Trade) apply(upd Update) {
	if upd.Outcome != nil {
		t.Outcome = *upd.Outcome
	}
	if upd.RRRatio != nil {
		t.RRRatio = *upd.RRRatio
	}
	if upd.Notes != nil {
		t.Notes = *upd.Notes
	}
}
