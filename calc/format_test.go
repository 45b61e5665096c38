package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{50, "$50.00"},
		{1234.5, "$1,234.50"},
		{-1234.5, "-$1,234.50"},
		{1000000, "$1,000,000.00"},
		{999.999, "$1,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in))
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3404.90", FormatPrice(3404.9, 2))
	assert.Equal(t, "3404.9000", FormatPrice(3404.9, 4))
}

func TestFormatTicks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "50.0", FormatTicks(50))
	assert.Equal(t, "-2.5", FormatTicks(-2.5))
}
