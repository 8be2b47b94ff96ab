package finance

// Indian new-regime income tax, FY 2023-24 slabs.
// Source: https://incometaxindia.gov.in/Pages/tax-rates.aspx

// taxSlab represents a single marginal slab. BaseTax is the cumulative tax
// owed on all income below Lower, so slab tax = BaseTax + (income-Lower)*Rate.
type taxSlab struct {
	Upper   float64 // inclusive upper bound (0 = no limit)
	Lower   float64
	BaseTax float64
	Rate    float64
}

// indianSlabs returns the new-regime slab table. Upper bounds are inclusive:
// an income sitting exactly on a boundary belongs to the lower slab.
func indianSlabs() []taxSlab {
	return []taxSlab{
		{Upper: 300000, Lower: 0, BaseTax: 0, Rate: 0},
		{Upper: 600000, Lower: 300000, BaseTax: 0, Rate: 0.05},
		{Upper: 900000, Lower: 600000, BaseTax: 15000, Rate: 0.10},
		{Upper: 1200000, Lower: 900000, BaseTax: 45000, Rate: 0.15},
		{Upper: 1500000, Lower: 1200000, BaseTax: 90000, Rate: 0.20},
		{Upper: 0, Lower: 1500000, BaseTax: 150000, Rate: 0.30},
	}
}

// cessRate is the health and education cess applied on top of slab tax.
const cessRate = 0.04

// TaxBreakdown is the full result of a tax calculation. Values are unrounded
// rupee amounts; the presentation layer rounds for display.
type TaxBreakdown struct {
	AnnualIncome  float64 `json:"annual_income"`
	Tax           float64 `json:"tax"`
	Cess          float64 `json:"cess"`
	TotalTax      float64 `json:"total_tax"`
	MonthlyTax    float64 `json:"monthly_tax"`
	EffectiveRate float64 `json:"effective_rate"`
}

// calculateSlabTax computes slab tax on annual income. Total over the
// non-negative domain; callers constrain income to >= 0.
func calculateSlabTax(annualIncome float64, slabs []taxSlab) float64 {
	for _, s := range slabs {
		if s.Upper == 0 || annualIncome <= s.Upper {
			return s.BaseTax + (annualIncome-s.Lower)*s.Rate
		}
	}
	return 0
}

// CalculateTax annualizes a monthly income and computes slab tax plus cess.
// Cess applies even when slab tax is zero; the effective rate is defined as
// zero for zero annual income.
func CalculateTax(monthlyIncome float64) TaxBreakdown {
	annualIncome := monthlyIncome * 12

	tax := calculateSlabTax(annualIncome, indianSlabs())
	cess := tax * cessRate
	totalTax := tax + cess

	var effectiveRate float64
	if annualIncome > 0 {
		effectiveRate = totalTax / annualIncome * 100
	}

	return TaxBreakdown{
		AnnualIncome:  annualIncome,
		Tax:           tax,
		Cess:          cess,
		TotalTax:      totalTax,
		MonthlyTax:    totalTax / 12,
		EffectiveRate: effectiveRate,
	}
}

// Section80CCap is the statutory ceiling on Section 80C deductions.
const Section80CCap = 150000

// CapSection80C sums the eligible deduction inputs and applies the statutory
// cap. The total is reported to the user but is not subtracted from taxable
// income before slab computation, matching the behavior this service
// replaces. TODO: confirm whether 80C should reduce taxable income; applying
// it here would change every estimate, so it stays display-only until then.
func CapSection80C(amounts ...float64) float64 {
	var total float64
	for _, a := range amounts {
		total += a
	}
	if total > Section80CCap {
		return Section80CCap
	}
	return total
}
