package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputs_LongOrdering(t *testing.T) {
	t.Parallel()

	warnings := ValidateInputs(Inputs{
		Side:         Long,
		Contracts:    1,
		Entry:        100,
		ProfitTarget: fp(95),  // below entry: suspicious for a long
		StopLoss:     fp(105), // above entry: suspicious for a long
	})

	require.Len(t, warnings, 2)
	assert.Equal(t, SeverityWarning, warnings[0].Severity)
	assert.Equal(t, "profitTarget", warnings[0].Field)
	assert.Equal(t, SeverityWarning, warnings[1].Severity)
	assert.Equal(t, "stopLoss", warnings[1].Field)
}

func TestValidateInputs_ShortOrdering(t *testing.T) {
	t.Parallel()

	warnings := ValidateInputs(Inputs{
		Side:         Short,
		Contracts:    1,
		Entry:        100,
		ProfitTarget: fp(105),
		StopLoss:     fp(95),
	})

	require.Len(t, warnings, 2)
	assert.Equal(t, "profitTarget", warnings[0].Field)
	assert.Equal(t, "stopLoss", warnings[1].Field)
}

func TestValidateInputs_WellFormedTradeIsClean(t *testing.T) {
	t.Parallel()

	warnings := ValidateInputs(Inputs{
		Side:         Long,
		Contracts:    2,
		Entry:        100,
		ProfitTarget: fp(106),
		StopLoss:     fp(98),
	})
	assert.Empty(t, warnings)
}

func TestValidateInputs_NonPositiveContracts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		contracts float64
	}{
		{"zero", 0},
		{"negative", -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			warnings := ValidateInputs(Inputs{
				Side:      Long,
				Contracts: tt.contracts,
				Entry:     100,
			})

			require.Len(t, warnings, 1)
			assert.Equal(t, SeverityError, warnings[0].Severity)
			assert.Equal(t, "contracts", warnings[0].Field)
		})
	}
}

// The calculator still produces output for inputs the validator flags;
// the warnings are advisory only.
func TestValidateInputs_DoesNotBlockCalculation(t *testing.T) {
	t.Parallel()

	in := Inputs{
		Side:            Long,
		Contracts:       0,
		Entry:           100,
		Exit:            fp(105),
		FeesPerContract: 0,
		TickSize:        fp(0.1),
		TickValue:       fp(1),
	}

	warnings := ValidateInputs(in)
	require.NotEmpty(t, warnings)

	got, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got.TotalTicks, 1e-9)
	assert.InDelta(t, 0.0, got.NetPnl, 1e-9)
}
