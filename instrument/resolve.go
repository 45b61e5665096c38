package instrument

import "fmt"

// TickParams is the resolved tick metadata used by the calculator.
type TickParams struct {
	TickSize           float64
	TickValue          float64
	ContractMultiplier float64
}

// Overrides carries per-trade metadata overrides. A nil field means
// "use the preset value".
type Overrides struct {
	TickSize           *float64
	TickValue          *float64
	ContractMultiplier *float64
}

// Resolve produces the effective tick parameters for a symbol.
//
// Precedence, highest first:
//  1. explicit override
//  2. the preset for symbol
//  3. the preset for Default
//
// Resolve never returns a zero tick size: an override of 0 is rejected,
// and every preset carries a positive tick size. Callers can divide by
// TickSize without guarding.
func Resolve(symbol string, ov Overrides) (TickParams, error) {
	preset, ok := Instruments[symbol]
	if !ok {
		preset = Instruments[Default]
	}

	p := TickParams{
		TickSize:           preset.TickSize,
		TickValue:          preset.TickValue,
		ContractMultiplier: preset.ContractMultiplier,
	}

	if ov.TickSize != nil {
		if *ov.TickSize <= 0 {
			return TickParams{}, fmt.Errorf("tick size override must be positive, got %v", *ov.TickSize)
		}
		p.TickSize = *ov.TickSize
	}
	if ov.TickValue != nil {
		p.TickValue = *ov.TickValue
	}
	if ov.ContractMultiplier != nil {
		p.ContractMultiplier = *ov.ContractMultiplier
	}

	return p, nil
}
