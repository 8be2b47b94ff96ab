package finance

import (
	"math"
	"testing"
)

func TestCalculateSlabTax(t *testing.T) {
	slabs := indianSlabs()
	tests := []struct {
		name   string
		income float64
		want   float64
	}{
		{"zero income", 0, 0},
		{"within exempt slab", 250000, 0},
		{"exempt boundary", 300000, 0},
		{"5% slab", 500000, 10000},
		{"5% slab boundary", 600000, 15000},
		{"10% slab", 750000, 30000},
		{"10% slab boundary", 900000, 45000},
		{"15% slab boundary", 1200000, 90000},
		{"20% slab boundary", 1500000, 150000},
		{"top slab", 2000000, 300000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateSlabTax(tt.income, slabs)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("calculateSlabTax(%v) = %.2f, want %.2f", tt.income, got, tt.want)
			}
		})
	}
}

func TestCalculateTaxAnnualizes(t *testing.T) {
	for _, monthly := range []float64{0, 1, 25000, 83333.33, 500000} {
		calc := CalculateTax(monthly)
		if calc.AnnualIncome != monthly*12 {
			t.Errorf("AnnualIncome = %v, want %v", calc.AnnualIncome, monthly*12)
		}
	}
}

func TestCalculateTaxBoundaries(t *testing.T) {
	// Pre-cess tax at each slab boundary, driven by monthly income.
	tests := []struct {
		annual  float64
		wantTax float64
	}{
		{300000, 0},
		{600000, 15000},
		{900000, 45000},
		{1200000, 90000},
		{1500000, 150000},
	}
	for _, tt := range tests {
		calc := CalculateTax(tt.annual / 12)
		if math.Abs(calc.Tax-tt.wantTax) > 0.01 {
			t.Errorf("Tax at annual %v = %.2f, want %.2f", tt.annual, calc.Tax, tt.wantTax)
		}
	}
}

func TestCalculateTaxCess(t *testing.T) {
	for _, monthly := range []float64{0, 20000, 50000, 75000, 100000, 200000} {
		calc := CalculateTax(monthly)
		if math.Abs(calc.Cess-calc.Tax*0.04) > 1e-9 {
			t.Errorf("Cess = %v, want 4%% of tax %v", calc.Cess, calc.Tax)
		}
		if math.Abs(calc.TotalTax-(calc.Tax+calc.Cess)) > 1e-9 {
			t.Errorf("TotalTax = %v, want tax+cess", calc.TotalTax)
		}
		if math.Abs(calc.MonthlyTax-calc.TotalTax/12) > 1e-9 {
			t.Errorf("MonthlyTax = %v, want total/12", calc.MonthlyTax)
		}
	}
}

func TestCalculateTaxZeroIncome(t *testing.T) {
	calc := CalculateTax(0)
	if calc.Tax != 0 || calc.Cess != 0 || calc.TotalTax != 0 {
		t.Errorf("expected all-zero tax for zero income, got %+v", calc)
	}
	if calc.EffectiveRate != 0 {
		t.Errorf("EffectiveRate = %v, want 0 for zero income", calc.EffectiveRate)
	}
}

func TestCalculateTaxMonotonic(t *testing.T) {
	var prev float64
	for monthly := 0.0; monthly <= 300000; monthly += 2500 {
		calc := CalculateTax(monthly)
		if calc.TotalTax < prev {
			t.Fatalf("total tax decreased at monthly income %v: %v < %v", monthly, calc.TotalTax, prev)
		}
		prev = calc.TotalTax
	}
}

func TestCalculateTaxEffectiveRate(t *testing.T) {
	calc := CalculateTax(100000) // 12L annual
	want := calc.TotalTax / calc.AnnualIncome * 100
	if math.Abs(calc.EffectiveRate-want) > 1e-9 {
		t.Errorf("EffectiveRate = %v, want %v", calc.EffectiveRate, want)
	}
	if calc.EffectiveRate <= 0 || calc.EffectiveRate >= 30 {
		t.Errorf("EffectiveRate = %v, out of plausible range", calc.EffectiveRate)
	}
}

func TestCapSection80C(t *testing.T) {
	tests := []struct {
		name    string
		amounts []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"under cap", []float64{50000, 30000}, 80000},
		{"at cap", []float64{100000, 50000}, 150000},
		{"over cap", []float64{100000, 60000, 40000}, 150000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapSection80C(tt.amounts...); got != tt.want {
				t.Errorf("CapSection80C(%v) = %v, want %v", tt.amounts, got, tt.want)
			}
		})
	}
}

func TestCapSection80CDoesNotChangeTax(t *testing.T) {
	// Deductions are reported, not applied: identical incomes must produce
	// identical tax regardless of what the caller capped.
	a := CalculateTax(80000)
	_ = CapSection80C(150000)
	b := CalculateTax(80000)
	if a != b {
		t.Errorf("tax changed across 80C capping: %+v vs %+v", a, b)
	}
}
