package finance

import (
	"math"
	"testing"

	"github.com/rupeemate/backend/internal/model"
)

func TestAllocateBudgetFractions(t *testing.T) {
	for _, category := range []model.UserCategory{model.CategoryStudent, model.CategoryProfessional} {
		t.Run(string(category), func(t *testing.T) {
			split := AllocateBudget(category, 0)
			var sum float64
			for _, frac := range split {
				sum += frac
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("fractions for %s sum to %v, want 1.0", category, sum)
			}
		})
	}
}

func TestAllocateBudgetStudentAmounts(t *testing.T) {
	split := AllocateBudget(model.CategoryStudent, 100000)
	want := map[string]float64{
		"Essentials": 50000,
		"Education":  30000,
		"Savings":    20000,
	}
	if len(split) != len(want) {
		t.Fatalf("got %d categories, want %d: %v", len(split), len(want), split)
	}
	var total float64
	for name, amount := range want {
		if split[name] != amount {
			t.Errorf("%s = %v, want %v", name, split[name], amount)
		}
		total += split[name]
	}
	if total != 100000 {
		t.Errorf("amounts sum to %v, want 100000", total)
	}
}

func TestAllocateBudgetProfessionalAmounts(t *testing.T) {
	split := AllocateBudget(model.CategoryProfessional, 80000)
	want := map[string]float64{
		"Essentials":    32000,
		"Savings":       16000,
		"Investments":   16000,
		"Discretionary": 16000,
	}
	for name, amount := range want {
		if split[name] != amount {
			t.Errorf("%s = %v, want %v", name, split[name], amount)
		}
	}
}

func TestAllocateBudgetFallback(t *testing.T) {
	// Anything outside Student gets the professional split, including
	// Retired and values that never passed enum validation.
	for _, category := range []model.UserCategory{model.CategoryRetired, model.UserCategory("Freelancer"), ""} {
		split := AllocateBudget(category, 0)
		if len(split) != 4 {
			t.Errorf("category %q: got %d categories, want professional split of 4", category, len(split))
		}
		if _, ok := split["Discretionary"]; !ok {
			t.Errorf("category %q: missing Discretionary from fallback split", category)
		}
	}
}
