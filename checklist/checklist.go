// Package checklist holds the pre-trade discipline checklist: a fixed
// set of sections and items, plus the user's completion state. The
// items themselves are part of the trading plan and never change at
// runtime; only the checked/unchecked state persists.
package checklist

// Item is one actionable line. Indented items are sub-points of the
// item above them.
type Item struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Indent bool   `json:"indent,omitempty"`
}

// Group is an optional category heading within a section.
type Group struct {
	Category string `json:"category,omitempty"`
	Items    []Item `json:"items"`
}

// Section is one numbered block of the checklist.
type Section struct {
	Title  string  `json:"title"`
	Badge  string  `json:"badge"`
	Groups []Group `json:"groups"`
}

// State maps item ID to checked.
type State map[string]bool

// Progress counts checked items against the total.
type Progress struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
}

// Toggle flips one item and returns the new value. Unknown IDs toggle
// from unchecked like any other, so the state survives checklist
// edits between versions.
func (s State) Toggle(itemID string) bool {
	s[itemID] = !s[itemID]
	return s[itemID]
}

// ProgressOf tallies s against the full checklist.
func ProgressOf(s State) Progress {
	p := Progress{}
	for _, sec := range Sections {
		for _, g := range sec.Groups {
			for _, item := range g.Items {
				p.Total++
				if s[item.ID] {
					p.Checked++
				}
			}
		}
	}
	return p
}

// Sections is the trading plan checklist, in display order.
var Sections = []Section{
	{
		Title: "MARKET PREP & CHART SETUP",
		Badge: "✅ 1.",
		Groups: []Group{
			{
				Category: "📆 News & Events Awareness",
				Items: []Item{
					{ID: "news1", Text: "Check MyFXBook or economic calendar for high-impact events (NFP, CPI, FOMC)"},
					{ID: "news2", Text: "Avoid placing trades during or right before red/orange events on the instrument"},
				},
			},
			{
				Category: "🧭 HTF Structure Mapping",
				Items: []Item{
					{ID: "htf1", Text: "Use the 4H chart to define the broader trend (bullish, bearish, or range)"},
					{ID: "htf2", Text: "Mark major S/R zones and clean S/D zones"},
					{ID: "htf3", Text: "Label previous week's high/low, recent strong reactions, or break/bounce levels"},
				},
			},
			{
				Category: "🔍 Execution Frame Setup (1H)",
				Items: []Item{
					{ID: "exec1", Text: "Refine S/R zones on the 1H chart (align with wicks, consolidations)"},
					{ID: "exec2", Text: "Draw only clear, valid trendlines (2–3+ touches)"},
					{ID: "exec3", Text: "Set alerts — don't stare at charts all day"},
				},
			},
		},
	},
	{
		Title: "TRENDLINE SETUP & BREAK CONDITIONS",
		Badge: "✅ 2.",
		Groups: []Group{
			{
				Items: []Item{
					{ID: "tl1", Text: "Trendline has minimum 2 solid touches, ideally 3"},
					{ID: "tl2", Text: "Line spans at least 24–72 hours of valid price action"},
					{ID: "tl3", Text: "Breakout candle is strong-bodied (not a doji or weak bar)"},
					{ID: "tl4", Text: "Bonus: Break occurs near an S/R zone or compression wedge"},
				},
			},
		},
	},
	{
		Title: "CONFIRMATION FILTERS",
		Badge: "✅ 3.",
		Groups: []Group{
			{
				Category: "📉 RSI Confirmation (Optional)",
				Items: []Item{
					{ID: "rsi1", Text: "RSI > 60 = Bullish momentum (dark green)"},
					{ID: "rsi2", Text: "RSI < 40 = Bearish momentum (dark purple)"},
				},
			},
			{
				Category: "🕯️ Candle Confirmation (on 1H)",
				Items: []Item{
					{ID: "candle1", Text: "Wick rejection at S/R or TL, followed by opposite close"},
					{ID: "candle2", Text: "Inside bar — use breakout of previous candle range"},
					{ID: "candle3", Text: "Engulfing or momentum candle — big-bodied, directional, strong close"},
				},
			},
		},
	},
	{
		Title: "ENTRY CRITERIA (1H Execution)",
		Badge: "✅ 4.",
		Groups: []Group{
			{
				Items: []Item{
					{ID: "entry1", Text: "Clear trendline setup confirmed (2–3 touches, 24–72h of structure)"},
					{ID: "entry2", Text: "Entry candle follows clean breakout or rejection"},
					{ID: "entry3", Text: "Structure supports direction (higher low or lower high visible)"},
					{ID: "entry4", Text: "Price near key S/R for added confluence"},
					{ID: "entry5", Text: "Trade offers clean RR (1:2+) and low-risk entry"},
				},
			},
		},
	},
	{
		Title: "STOP LOSS & RISK MANAGEMENT",
		Badge: "✅ 5.",
		Groups: []Group{
			{
				Items: []Item{
					{ID: "sl1", Text: "SL placed beyond the structure (not just under/above candle wick)"},
					{ID: "sl2", Text: "Ensure wiggle room – avoid getting wicked out on normal volatility"},
					{ID: "sl3", Text: "Risk 1–2% max per trade (align with Apex or personal drawdown limits)"},
				},
			},
		},
	},
	{
		Title: "TARGETING STRATEGY",
		Badge: "✅ 6.",
		Groups: []Group{
			{
				Items: []Item{
					{ID: "tp1", Text: "TP1: Logical next HTF S/R zone or conservative RR (1.5–2)"},
					{ID: "tp2", Text: "TP2: Use trailing stops on 1H swing highs/lows or candle patterns"},
					{ID: "tp3", Text: "Optional: Leave a small runner if trend is accelerating on 4H"},
				},
			},
		},
	},
	{
		Title: "APEX 50K RULES (if funded)",
		Badge: "✅ 7.",
		Groups: []Group{
			{
				Items: []Item{
					{ID: "apex1", Text: "Max daily loss: $750"},
					{ID: "apex2", Text: "Max overall drawdown: $2,600"},
					{ID: "apex3", Text: "Maintain 30% profit consistency rule"},
					{ID: "apex4", Text: "No overtrading → 1–2 A+ setups per day are enough"},
				},
			},
		},
	},
	{
		Title: "POST-TRADE REVIEW",
		Badge: "✅ 8.",
		Groups: []Group{
			{
				Items: []Item{
					{ID: "review1", Text: "Screenshot saved & journaled"},
					{ID: "review2", Text: "Grade the trade:"},
					{ID: "review2a", Text: "A+ = textbook entry, structure, patience", Indent: true},
					{ID: "review2b", Text: "A- = valid but minor risk in steep trendline", Indent: true},
					{ID: "review2c", Text: "B = decent setup, missing 1–2 confluences", Indent: true},
					{ID: "review2d", Text: "B-/C = emotional, rushed, or over-managed", Indent: true},
					{ID: "review3", Text: "Reflect: Did I stick to my plan? Was I calm? Was I disciplined?"},
				},
			},
		},
	},
}
