package instrument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestResolve_PresetLookup(t *testing.T) {
	t.Parallel()

	p, err := Resolve("MCL1!", Overrides{})
	require.NoError(t, err)

	assert.InDelta(t, 0.01, p.TickSize, 1e-12)
	assert.InDelta(t, 1.0, p.TickValue, 1e-12)
	assert.InDelta(t, 100.0, p.ContractMultiplier, 1e-12)
}

func TestResolve_UnknownSymbolUsesDefault(t *testing.T) {
	t.Parallel()

	p, err := Resolve("NQ1!", Overrides{})
	require.NoError(t, err)

	want := Instruments[Default]
	assert.InDelta(t, want.TickSize, p.TickSize, 1e-12)
	assert.InDelta(t, want.TickValue, p.TickValue, 1e-12)
	assert.InDelta(t, want.ContractMultiplier, p.ContractMultiplier, 1e-12)
}

func TestResolve_OverridesWin(t *testing.T) {
	t.Parallel()

	p, err := Resolve("MGC1!", Overrides{
		TickSize:  fp(0.25),
		TickValue: fp(12.5),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.25, p.TickSize, 1e-12)
	assert.InDelta(t, 12.5, p.TickValue, 1e-12)
	// Unset override falls through to the preset.
	assert.InDelta(t, 10.0, p.ContractMultiplier, 1e-12)
}

func TestResolve_RejectsNonPositiveTickSize(t *testing.T) {
	t.Parallel()

	_, err := Resolve("MGC1!", Overrides{TickSize: fp(0)})
	assert.Error(t, err)

	_, err = Resolve("MGC1!", Overrides{TickSize: fp(-0.1)})
	assert.Error(t, err)
}

func TestActive_OnlyTradeableInstruments(t *testing.T) {
	t.Parallel()

	active := Active()
	require.Len(t, active, 1)
	assert.Equal(t, "MGC1!", active[0].Symbol)
}
