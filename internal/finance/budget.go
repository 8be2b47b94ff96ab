package finance

import "github.com/rupeemate/backend/internal/model"

// studentSplit and professionalSplit are the recommended budget fractions.
// Each sums to 1.0. Any category other than Student falls back to the
// professional split.
var (
	studentSplit = map[string]float64{
		"Essentials": 0.50,
		"Education":  0.30,
		"Savings":    0.20,
	}
	professionalSplit = map[string]float64{
		"Essentials":    0.40,
		"Savings":       0.20,
		"Investments":   0.20,
		"Discretionary": 0.20,
	}
)

// AllocateBudget maps a user category to recommended spending splits. With a
// positive income the values are absolute amounts (fraction * income);
// otherwise the raw fractions are returned. Negative income is not validated
// here; callers constrain the input to non-negative.
func AllocateBudget(category model.UserCategory, income float64) map[string]float64 {
	split := professionalSplit
	if category == model.CategoryStudent {
		split = studentSplit
	}

	out := make(map[string]float64, len(split))
	for name, frac := range split {
		if income > 0 {
			out[name] = frac * income
		} else {
			out[name] = frac
		}
	}
	return out
}
