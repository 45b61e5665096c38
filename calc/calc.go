// Package calc converts one trade's raw prices and quantities into a
// P&L and risk summary. Everything here is a pure function of its
// inputs; persistence and presentation live elsewhere.
package calc

import (
	"math"

	"github.com/rustyeddy/tradebook/instrument"
)

// Side is the trade direction.
type Side string

const (
	Long  Side = "LONG"
	Short Side = "SHORT"
)

// Inputs are the raw numbers for a single trade. Optional fields are
// pointers; nil means the user has not supplied the value yet.
type Inputs struct {
	Side             Side
	Contracts        float64
	Entry            float64
	Exit             *float64
	StopLoss         *float64
	ProfitTarget     *float64
	AccountEquity    *float64
	HighestInTrade   *float64
	LowestInTrade    *float64
	FeesPerContract  float64
	InstrumentSymbol string
	// Per-trade metadata overrides; nil falls through to the preset.
	TickSize           *float64
	TickValue          *float64
	ContractMultiplier *float64
}

// Results is the derived metric set. Mandatory fields are always
// populated; optional fields are nil when their preconditions do not
// hold (missing stop, missing equity, and so on).
type Results struct {
	Points           float64
	Ticks            float64
	TicksPerContract float64
	TotalTicks       float64
	GrossPnl         float64
	FeesTotal        float64
	NetPnl           float64
	PositionNotional float64

	TradeRiskDollar   *float64
	PlannedRMultiple  *float64
	RealizedRMultiple *float64
	RoiPercent        *float64

	PriceMFE  *float64
	PriceMAE  *float64
	MFETicks  *float64
	MAETicks  *float64
	MFEDollar *float64
	MAEDollar *float64

	// IsOpen is true when no real exit price was supplied. A profit
	// target alone projects the P&L but does not close the trade.
	IsOpen bool
}

// Calculate derives the full metric set for one trade.
//
// Tick metadata comes from instrument.Resolve: explicit overrides win,
// then the preset for InstrumentSymbol, then the default instrument.
// The resolved tick size is always positive, so the divisions below
// are safe.
func Calculate(in Inputs) (Results, error) {
	params, err := instrument.Resolve(in.InstrumentSymbol, instrument.Overrides{
		TickSize:           in.TickSize,
		TickValue:          in.TickValue,
		ContractMultiplier: in.ContractMultiplier,
	})
	if err != nil {
		return Results{}, err
	}

	dir := 1.0
	if in.Side == Short {
		dir = -1.0
	}

	ts := params.TickSize
	tv := params.TickValue
	qty := in.Contracts
	entry := in.Entry

	// With no real exit, project using the profit target. This doubles
	// as the open/closed signal below.
	exit := in.Exit
	if exit == nil {
		exit = in.ProfitTarget
	}

	var points float64
	if exit != nil {
		points = (*exit - entry) * dir
	}
	ticks := roundTicks(points / ts)
	totalTicks := ticks * qty
	grossPnl := totalTicks * tv
	feesTotal := qty * in.FeesPerContract
	netPnl := grossPnl - feesTotal

	res := Results{
		Points:           points,
		Ticks:            ticks,
		TicksPerContract: ticks,
		TotalTicks:       totalTicks,
		GrossPnl:         grossPnl,
		FeesTotal:        feesTotal,
		NetPnl:           netPnl,
		PositionNotional: entry * params.ContractMultiplier * qty,
		IsOpen:           in.Exit == nil,
	}

	if in.StopLoss != nil {
		risk := math.Abs(entry-*in.StopLoss) / ts * tv * qty
		res.TradeRiskDollar = &risk

		if in.ProfitTarget != nil {
			planned := math.Abs(*in.ProfitTarget-entry) / math.Abs(entry-*in.StopLoss)
			res.PlannedRMultiple = &planned
		}
		if in.Exit != nil && risk > 0 {
			realized := netPnl / risk
			res.RealizedRMultiple = &realized
		}
	}

	if in.AccountEquity != nil && *in.AccountEquity > 0 {
		roi := netPnl / *in.AccountEquity * 100
		res.RoiPercent = &roi
	}

	if in.HighestInTrade != nil && in.LowestInTrade != nil {
		var mfe, mae float64
		if in.Side == Long {
			mfe = *in.HighestInTrade - entry
			mae = entry - *in.LowestInTrade
		} else {
			mfe = entry - *in.LowestInTrade
			mae = *in.HighestInTrade - entry
		}
		res.PriceMFE = &mfe
		res.PriceMAE = &mae

		// Non-positive excursions mean there was nothing favorable or
		// adverse to report; the tick/dollar fields stay nil.
		if mfe > 0 {
			mfeTicks := mfe / ts
			mfeDollar := mfeTicks * tv * qty
			res.MFETicks = &mfeTicks
			res.MFEDollar = &mfeDollar
		}
		if mae > 0 {
			maeTicks := mae / ts
			maeDollar := maeTicks * tv * qty
			res.MAETicks = &maeTicks
			res.MAEDollar = &maeDollar
		}
	}

	return res, nil
}

// roundTicks rounds to one decimal place, half up, matching how ticks
// are quoted on the fill panel.
func roundTicks(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
