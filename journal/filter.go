package journal

import (
	"sort"
	"time"
)

// Filters is an ephemeral query over the trade history. Zero values
// (and the literal "all") act as wildcards.
type Filters struct {
	SetupType string   `json:"setupType"`
	Outcome   string   `json:"outcome"`
	Tags      []string `json:"tags"`
	DateFrom  string   `json:"dateFrom,omitempty"`
	DateTo    string   `json:"dateTo,omitempty"`
}

// Match reports whether a trade passes every active filter. Setup type
// and outcome compare case-sensitively; the tag filter matches on any
// shared tag, not all.
func (f Filters) Match(t Trade) bool {
	if f.SetupType != "" && f.SetupType != "all" && t.SetupType != f.SetupType {
		return false
	}
	if f.Outcome != "" && f.Outcome != "all" && string(t.Outcome) != f.Outcome {
		return false
	}

	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range t.Tags {
				if want == have {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.DateFrom != "" || f.DateTo != "" {
		tradeDate, err := parseDate(t.Date)
		if err != nil {
			// Trades whose dates cannot be parsed fail any active
			// date-range filter rather than slipping through.
			return false
		}
		if f.DateFrom != "" {
			from, err := parseDate(f.DateFrom)
			if err != nil || tradeDate.Before(from) {
				return false
			}
		}
		if f.DateTo != "" {
			to, err := parseDate(f.DateTo)
			if err != nil || tradeDate.After(to) {
				return false
			}
		}
	}

	return true
}

// Filter returns the trades passing f, preserving input order.
func Filter(trades []Trade, f Filters) []Trade {
	var out []Trade
	for _, t := range trades {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// parseDate accepts ISO 8601 dates, with or without a time component.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// SetupTypes returns the distinct setup types across trades, sorted.
func SetupTypes(trades []Trade) []string {
	return uniqueSorted(trades, func(t Trade) []string { return []string{t.SetupType} })
}

// TagSet returns the distinct tags across trades, sorted.
func TagSet(trades []Trade) []string {
	return uniqueSorted(trades, func(t Trade) []string { return t.Tags })
}

func uniqueSorted(trades []Trade, get func(Trade) []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, t := range trades {
		for _, s := range get(t) {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
