package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters_TagIntersection(t *testing.T) {
	t.Parallel()

	trade := Trade{Tags: []string{"Patience", "Risk Management"}}

	// Any shared tag matches.
	assert.True(t, Filters{Tags: []string{"Discipline", "Patience"}}.Match(trade))
	// No shared tag does not.
	assert.False(t, Filters{Tags: []string{"Discipline"}}.Match(trade))
	// Empty tag filter is a wildcard.
	assert.True(t, Filters{}.Match(trade))
}

func TestFilters_SetupTypeAndOutcome(t *testing.T) {
	t.Parallel()

	trade := Trade{SetupType: "4H MGC Trendline Break", Outcome: Win}

	tests := []struct {
		name string
		f    Filters
		want bool
	}{
		{"empty matches", Filters{}, true},
		{"all matches", Filters{SetupType: "all", Outcome: "all"}, true},
		{"exact setup", Filters{SetupType: "4H MGC Trendline Break"}, true},
		{"case sensitive", Filters{SetupType: "4h mgc trendline break"}, false},
		{"wrong setup", Filters{SetupType: "Range Fade"}, false},
		{"exact outcome", Filters{Outcome: "Win"}, true},
		{"wrong outcome", Filters{Outcome: "Loss"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.f.Match(trade))
		})
	}
}

func TestFilters_DateRange(t *testing.T) {
	t.Parallel()

	trade := Trade{Date: "2026-08-15"}

	tests := []struct {
		name string
		f    Filters
		want bool
	}{
		{"inside range", Filters{DateFrom: "2026-08-01", DateTo: "2026-08-31"}, true},
		{"on from boundary", Filters{DateFrom: "2026-08-15"}, true},
		{"on to boundary", Filters{DateTo: "2026-08-15"}, true},
		{"before range", Filters{DateFrom: "2026-08-16"}, false},
		{"after range", Filters{DateTo: "2026-08-14"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.f.Match(trade))
		})
	}
}

func TestFilters_UnparseableDateFailsRangeCheck(t *testing.T) {
	t.Parallel()

	trade := Trade{Date: "sometime in August"}

	assert.False(t, Filters{DateFrom: "2026-08-01"}.Match(trade))
	// No date filter active: the bad date never gets parsed.
	assert.True(t, Filters{}.Match(trade))
}

func TestFilter_CombinesAllPredicates(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{ID: "a", Date: "2026-08-10", SetupType: "Trendline", Outcome: Win, Tags: []string{"Patience"}},
		{ID: "b", Date: "2026-08-20", SetupType: "Trendline", Outcome: Loss, Tags: []string{"FOMO"}},
		{ID: "c", Date: "2026-09-01", SetupType: "Range Fade", Outcome: Win, Tags: []string{"Patience"}},
	}

	got := Filter(trades, Filters{
		SetupType: "Trendline",
		Tags:      []string{"Patience", "Discipline"},
		DateFrom:  "2026-08-01",
		DateTo:    "2026-08-31",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestSetupTypesAndTagSet(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{SetupType: "Trendline", Tags: []string{"Patience", "FOMO"}},
		{SetupType: "Range Fade", Tags: []string{"Patience"}},
		{SetupType: "Trendline", Tags: nil},
	}

	assert.Equal(t, []string{"Range Fade", "Trendline"}, SetupTypes(trades))
	assert.Equal(t, []string{"FOMO", "Patience"}, TagSet(trades))
}
