package journal

import "math"

// Grade buckets for aggregate performance. The thresholds are a
// business rule, not a statistical derivation; the boundaries are
// inclusive on both winRate and averageRR.
const (
	GradeAPlusPlus = "A++"
	GradeA         = "A"
	GradeB         = "B"
	GradeNoTrade   = "No-trade"
)

// Stats summarizes a set of historical trades.
type Stats struct {
	TotalTrades int     `json:"totalTrades"`
	WinRate     float64 `json:"winRate"`
	AverageRR   float64 `json:"averageRR"`
	Grade       string  `json:"grade"`
	GradeColor  string  `json:"gradeColor"`
}

// Statistics aggregates trades into a win rate, mean R:R and a letter
// grade. Pending trades are excluded from both the denominator and the
// R:R mean. Order of the input is irrelevant.
func Statistics(trades []Trade) Stats {
	var completed []Trade
	for _, t := range trades {
		if t.Outcome != Pending {
			completed = append(completed, t)
		}
	}

	if len(completed) == 0 {
		return Stats{
			Grade:      GradeNoTrade,
			GradeColor: "error",
		}
	}

	wins := 0
	sumRR := 0.0
	for _, t := range completed {
		if t.Outcome == Win {
			wins++
		}
		sumRR += t.RRRatio
	}

	winRate := round2(float64(wins) / float64(len(completed)) * 100)
	averageRR := round2(sumRR / float64(len(completed)))

	grade, color := GradeNoTrade, "error"
	switch {
	case winRate >= 70 && averageRR >= 2.5:
		grade, color = GradeAPlusPlus, "success"
	case winRate >= 60 && averageRR >= 2.0:
		grade, color = GradeA, "success"
	case winRate >= 50 && averageRR >= 1.5:
		grade, color = GradeB, "warning"
	}

	return Stats{
		TotalTrades: len(completed),
		WinRate:     winRate,
		AverageRR:   averageRR,
		Grade:       grade,
		GradeColor:  color,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
