package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestCalculate_LongWinner(t *testing.T) {
	t.Parallel()

	got, err := Calculate(Inputs{
		Side:            Long,
		Contracts:       1,
		Entry:           100,
		Exit:            fp(105),
		FeesPerContract: 0,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, got.Points, 1e-9)
	assert.InDelta(t, 50.0, got.Ticks, 1e-9)
	assert.InDelta(t, 50.0, got.TicksPerContract, 1e-9)
	assert.InDelta(t, 50.0, got.TotalTicks, 1e-9)
	assert.InDelta(t, 50.0, got.GrossPnl, 1e-9)
	assert.InDelta(t, 0.0, got.FeesTotal, 1e-9)
	assert.InDelta(t, 50.0, got.NetPnl, 1e-9)
	assert.False(t, got.IsOpen)
}

func TestCalculate_ShortSameMoveIsLoss(t *testing.T) {
	t.Parallel()

	got, err := Calculate(Inputs{
		Side:            Short,
		Contracts:       1,
		Entry:           100,
		Exit:            fp(105),
		FeesPerContract: 0,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	})
	require.NoError(t, err)

	assert.InDelta(t, -5.0, got.Points, 1e-9)
	assert.InDelta(t, -50.0, got.Ticks, 1e-9)
	assert.InDelta(t, -50.0, got.NetPnl, 1e-9)
}

func TestCalculate_ShortRiskAndPlannedR(t *testing.T) {
	t.Parallel()

	got, err := Calculate(Inputs{
		Side:            Short,
		Contracts:       1,
		Entry:           3404.9,
		StopLoss:        fp(3407.0),
		ProfitTarget:    fp(3398.0),
		FeesPerContract: 0,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	})
	require.NoError(t, err)

	require.NotNil(t, got.TradeRiskDollar)
	assert.InDelta(t, 21.0, *got.TradeRiskDollar, 1e-9)

	require.NotNil(t, got.PlannedRMultiple)
	assert.InDelta(t, 3.2857, *got.PlannedRMultiple, 1e-4)

	// Projected from the target, but still open.
	assert.True(t, got.IsOpen)
	assert.Nil(t, got.RealizedRMultiple)
}

func TestCalculate_RealizedRNeedsRealExit(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Side:            Long,
		Contracts:       2,
		Entry:           100,
		StopLoss:        fp(99),
		Exit:            fp(102),
		FeesPerContract: 1,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	}
	got, err := Calculate(in)
	require.NoError(t, err)

	// risk = 1.0/0.1*1*2 = 20; net = (2.0/0.1)*2*1 - 2 = 38
	require.NotNil(t, got.TradeRiskDollar)
	assert.InDelta(t, 20.0, *got.TradeRiskDollar, 1e-9)
	require.NotNil(t, got.RealizedRMultiple)
	assert.InDelta(t, 1.9, *got.RealizedRMultiple, 1e-9)
	assert.False(t, got.IsOpen)
}

func TestCalculate_NoExitNoTarget(t *testing.T) {
	t.Parallel()

	got, err := Calculate(Inputs{
		Side:            Long,
		Contracts:       1,
		Entry:           100,
		FeesPerContract: 0,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	})
	require.NoError(t, err)

	assert.True(t, got.IsOpen)
	assert.InDelta(t, 0.0, got.Points, 1e-9)
	assert.InDelta(t, 0.0, got.Ticks, 1e-9)
}

func TestCalculate_FeesAndNotional(t *testing.T) {
	t.Parallel()

	got, err := Calculate(Inputs{
		Side:             Long,
		Contracts:        3,
		Entry:            2000,
		Exit:             fp(2001),
		FeesPerContract:  1.5,
		InstrumentSymbol: "MGC1!", // tick 0.1/$1, multiplier 10
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.5, got.FeesTotal, 1e-9)
	assert.InDelta(t, 30.0, got.GrossPnl, 1e-9) // 10 ticks * 3 * $1
	assert.InDelta(t, 25.5, got.NetPnl, 1e-9)
	assert.InDelta(t, 60000.0, got.PositionNotional, 1e-9)
}

func TestCalculate_ROIOnlyWithPositiveEquity(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Side:            Long,
		Contracts:       1,
		Entry:           100,
		Exit:            fp(105),
		FeesPerContract: 0,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	}

	in.AccountEquity = fp(5000)
	got, err := Calculate(in)
	require.NoError(t, err)
	require.NotNil(t, got.RoiPercent)
	assert.InDelta(t, 1.0, *got.RoiPercent, 1e-9)

	in.AccountEquity = fp(0)
	got, err = Calculate(in)
	require.NoError(t, err)
	assert.Nil(t, got.RoiPercent)
}

func TestCalculate_Excursions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		side      Side
		high, low float64
		wantMFE   float64
		wantMAE   float64
	}{
		{"long both positive", Long, 106, 98, 6, 2},
		{"short mirrored", Short, 106, 98, 2, 6},
		{"long no adverse move", Long, 104, 100, 4, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Calculate(Inputs{
				Side:            tt.side,
				Contracts:       2,
				Entry:           100,
				Exit:            fp(103),
				HighestInTrade:  fp(tt.high),
				LowestInTrade:   fp(tt.low),
				FeesPerContract: 0,
				TickSize:        fp(0.1),
				TickValue:       fp(1),
			})
			require.NoError(t, err)

			require.NotNil(t, got.PriceMFE)
			require.NotNil(t, got.PriceMAE)
			assert.InDelta(t, tt.wantMFE, *got.PriceMFE, 1e-9)
			assert.InDelta(t, tt.wantMAE, *got.PriceMAE, 1e-9)

			if tt.wantMFE > 0 {
				require.NotNil(t, got.MFETicks)
				require.NotNil(t, got.MFEDollar)
				assert.InDelta(t, tt.wantMFE/0.1, *got.MFETicks, 1e-9)
				assert.InDelta(t, tt.wantMFE/0.1*2, *got.MFEDollar, 1e-9)
			} else {
				assert.Nil(t, got.MFETicks)
				assert.Nil(t, got.MFEDollar)
			}
			if tt.wantMAE > 0 {
				require.NotNil(t, got.MAETicks)
				require.NotNil(t, got.MAEDollar)
			} else {
				assert.Nil(t, got.MAETicks)
				assert.Nil(t, got.MAEDollar)
			}
		})
	}
}

func TestCalculate_TickRoundingHalfUp(t *testing.T) {
	t.Parallel()

	// 0.5625 points over a 0.25 tick is exactly 2.25 ticks (both values
	// are binary-exact), which must round up to 2.3, not to even.
	got, err := Calculate(Inputs{
		Side:            Long,
		Contracts:       1,
		Entry:           100,
		Exit:            fp(100.5625),
		FeesPerContract: 0,
		TickSize:        fp(0.25),
		TickValue:       fp(1),
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.3, got.Ticks, 1e-9)
}

func TestCalculate_UnknownSymbolFallsBackToDefault(t *testing.T) {
	t.Parallel()

	got, err := Calculate(Inputs{
		Side:             Long,
		Contracts:        1,
		Entry:            100,
		Exit:             fp(101),
		FeesPerContract:  0,
		InstrumentSymbol: "ZZZ9!",
	})
	require.NoError(t, err)

	// Default preset is Micro Gold: 0.1 tick, $1 tick value.
	assert.InDelta(t, 10.0, got.Ticks, 1e-9)
	assert.InDelta(t, 10.0, got.GrossPnl, 1e-9)
}

func TestCalculate_ZeroTickSizeOverrideRejected(t *testing.T) {
	t.Parallel()

	_, err := Calculate(Inputs{
		Side:      Long,
		Contracts: 1,
		Entry:     100,
		TickSize:  fp(0),
	})
	assert.Error(t, err)
}
