// Package instrument holds the contract presets (tick size, tick value,
// multiplier) and resolves the effective tick metadata for a trade.
package instrument

import "sort"

// Meta describes the contract metadata needed to convert a price move
// into ticks and dollars.
type Meta struct {
	Symbol             string
	Name               string
	TickSize           float64
	TickValue          float64
	ContractMultiplier float64
	Active             bool
}

// Instruments is the preset table, keyed by symbol.
var Instruments = map[string]Meta{
	"MGC1!": {
		Symbol:             "MGC1!",
		Name:               "Micro Gold",
		TickSize:           0.1,
		TickValue:          1, // $1 per tick
		ContractMultiplier: 10, // 10 troy oz
		Active:             true,
	},
	"MCL1!": {
		Symbol:             "MCL1!",
		Name:               "Micro Crude",
		TickSize:           0.01,
		TickValue:          1,
		ContractMultiplier: 100,
		Active:             false, // prepared but not yet traded
	},
}

// Default is the instrument assumed when a symbol is missing or unknown.
const Default = "MGC1!"

// Active returns the tradeable presets sorted by symbol.
func Active() []Meta {
	var out []Meta
	for _, m := range Instruments {
		if m.Active {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}
