package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders a dollar amount with thousands separators,
// e.g. -1234.5 -> "-$1,234.50".
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatPrice renders a price at fixed precision.
func FormatPrice(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// FormatTicks renders a tick count at the quoted 0.1 resolution.
func FormatTicks(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
