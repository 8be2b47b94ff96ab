package service

import (
	"context"
	"fmt"

	"github.com/rupeemate/backend/internal/finance"
	"github.com/rupeemate/backend/internal/logger"
	"go.uber.org/zap"
)

// tipsUnavailable is shown when the generation service cannot produce tips.
const tipsUnavailable = "Unable to fetch tax saving tips"

// TaxEstimateInput carries the tax calculator inputs. The Section 80C fields
// are reported back but not applied to taxable income (see TaxEstimate).
type TaxEstimateInput struct {
	MonthlyIncome float64 `json:"monthly_income"`
	EPFPPF        float64 `json:"epf_ppf"`
	ELSS          float64 `json:"elss"`
	LICPremium    float64 `json:"lic_premium"`
	IncludeTips   bool    `json:"include_tips"`
}

// TaxEstimate is the calculator output plus optional assistant tips.
type TaxEstimate struct {
	Breakdown finance.TaxBreakdown `json:"breakdown"`
	// Total80C is the capped sum of the declared Section 80C amounts. It is
	// informational only and was not subtracted before slab computation.
	Total80C float64 `json:"total_80c"`
	Tips     string  `json:"tips,omitempty"`
}

// EstimateTax runs the slab calculator and, when asked, fetches tax-saving
// tips from the generation service. Tip failures degrade to a placeholder
// instead of failing the estimate.
func (s *FinanceService) EstimateTax(ctx context.Context, username string, in TaxEstimateInput) (*TaxEstimate, error) {
	estimate := &TaxEstimate{
		Breakdown: finance.CalculateTax(in.MonthlyIncome),
		Total80C:  finance.CapSection80C(in.EPFPPF, in.ELSS, in.LICPremium),
	}

	if in.IncludeTips {
		user, err := s.store.GetUser(ctx, username)
		if err != nil {
			return nil, err
		}

		prompt := fmt.Sprintf("Give me top 3 tax saving tips for someone earning ₹%.0f per month in India", in.MonthlyIncome)
		tips, err := s.generator.Generate(ctx, prompt, systemInstruction(user.Category))
		if err != nil {
			logger.Get().Warn("tax tips generation failed",
				zap.String("username", username),
				zap.Error(err))
			tips = tipsUnavailable
		}
		estimate.Tips = tips
	}

	return estimate, nil
}
