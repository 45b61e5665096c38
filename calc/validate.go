package calc

// Severity classifies a validation finding. Warnings are advisory;
// errors mark inputs the calculator will still accept but whose output
// should not be trusted.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Warning flags a questionable input field. It never blocks
// calculation; Calculate ignores these entirely.
type Warning struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Field    string   `json:"field"`
}

// ValidateInputs checks price ordering against the trade direction and
// that the position size is positive. A LONG with its target below
// entry is legal but almost certainly a typo, hence advisory only.
//
// Contracts <= 0 is reported at error severity but still does not stop
// Calculate from producing (degenerate) output; callers decide what to
// do with it.
func ValidateInputs(in Inputs) []Warning {
	var warnings []Warning

	switch in.Side {
	case Long:
		if in.ProfitTarget != nil && *in.ProfitTarget < in.Entry {
			warnings = append(warnings, Warning{
				Severity: SeverityWarning,
				Message:  "For LONG trades, profit target should typically be above entry price",
				Field:    "profitTarget",
			})
		}
		if in.StopLoss != nil && *in.StopLoss > in.Entry {
			warnings = append(warnings, Warning{
				Severity: SeverityWarning,
				Message:  "For LONG trades, stop loss should typically be below entry price",
				Field:    "stopLoss",
			})
		}
	case Short:
		if in.ProfitTarget != nil && *in.ProfitTarget > in.Entry {
			warnings = append(warnings, Warning{
				Severity: SeverityWarning,
				Message:  "For SHORT trades, profit target should typically be below entry price",
				Field:    "profitTarget",
			})
		}
		if in.StopLoss != nil && *in.StopLoss < in.Entry {
			warnings = append(warnings, Warning{
				Severity: SeverityWarning,
				Message:  "For SHORT trades, stop loss should typically be above entry price",
				Field:    "stopLoss",
			})
		}
	}

	if in.Contracts <= 0 {
		warnings = append(warnings, Warning{
			Severity: SeverityError,
			Message:  "Contracts must be greater than 0",
			Field:    "contracts",
		})
	}

	return warnings
}
