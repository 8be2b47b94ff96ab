package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rupeemate/backend/internal/model"
)

// AddExpense records an expense. Date defaults to now.
func (s *FinanceService) AddExpense(ctx context.Context, username string, category model.ExpenseCategory, amount float64, note string, date time.Time) (*model.Expense, error) {
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense := &model.Expense{
		ID:       uuid.New().String(),
		Username: username,
		Category: category,
		Amount:   amount,
		Note:     note,
		Date:     date,
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns the user's expenses, newest first.
func (s *FinanceService) ListExpenses(ctx context.Context, username string, limit int) ([]*model.Expense, error) {
	return s.store.ListExpenses(ctx, username, limit)
}

// CategoryTotal is one slice of the expense distribution pie chart.
type CategoryTotal struct {
	Category model.ExpenseCategory `json:"category"`
	Total    float64               `json:"total"`
}

// ExpenseSummary aggregates a user's spending for charting.
type ExpenseSummary struct {
	Total      float64         `json:"total"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// SummarizeExpenses computes total spend and per-category totals.
func (s *FinanceService) SummarizeExpenses(ctx context.Context, username string) (*ExpenseSummary, error) {
	expenses, err := s.store.ListExpenses(ctx, username, 0)
	if err != nil {
		return nil, err
	}

	totals := make(map[model.ExpenseCategory]float64)
	summary := &ExpenseSummary{Count: len(expenses)}
	for _, e := range expenses {
		summary.Total += e.Amount
		totals[e.Category] += e.Amount
	}

	// Fixed enum order keeps chart slices stable between requests.
	for _, category := range model.ExpenseCategories() {
		if total, ok := totals[category]; ok {
			summary.ByCategory = append(summary.ByCategory, CategoryTotal{Category: category, Total: total})
		}
	}
	return summary, nil
}

// AddInvestment records an investment. Returns may be negative.
func (s *FinanceService) AddInvestment(ctx context.Context, username string, invType model.InvestmentType, amount, returns float64, date time.Time) (*model.Investment, error) {
	if date.IsZero() {
		date = time.Now().UTC()
	}

	investment := &model.Investment{
		ID:       uuid.New().String(),
		Username: username,
		Type:     invType,
		Amount:   amount,
		Returns:  returns,
		Date:     date,
	}

	if err := s.store.CreateInvestment(ctx, investment); err != nil {
		return nil, err
	}
	return investment, nil
}

// ListInvestments returns the user's investments, newest first.
func (s *FinanceService) ListInvestments(ctx context.Context, username string, limit int) ([]*model.Investment, error) {
	return s.store.ListInvestments(ctx, username, limit)
}

// TypeTotal is one bar group of the portfolio chart.
type TypeTotal struct {
	Type     model.InvestmentType `json:"type"`
	Invested float64              `json:"invested"`
	Returns  float64              `json:"returns"`
}

// InvestmentSummary aggregates a user's portfolio for charting.
type InvestmentSummary struct {
	TotalInvested  float64     `json:"total_invested"`
	TotalReturns   float64     `json:"total_returns"`
	PortfolioValue float64     `json:"portfolio_value"`
	ROIPercent     float64     `json:"roi_percent"`
	Count          int         `json:"count"`
	ByType         []TypeTotal `json:"by_type"`
}

// SummarizeInvestments computes portfolio totals and per-type rows. ROI is
// defined as 0 when nothing has been invested.
func (s *FinanceService) SummarizeInvestments(ctx context.Context, username string) (*InvestmentSummary, error) {
	investments, err := s.store.ListInvestments(ctx, username, 0)
	if err != nil {
		return nil, err
	}

	invested := make(map[model.InvestmentType]float64)
	returns := make(map[model.InvestmentType]float64)
	summary := &InvestmentSummary{Count: len(investments)}
	for _, inv := range investments {
		summary.TotalInvested += inv.Amount
		summary.TotalReturns += inv.Returns
		invested[inv.Type] += inv.Amount
		returns[inv.Type] += inv.Returns
	}

	summary.PortfolioValue = summary.TotalInvested + summary.TotalReturns
	if summary.TotalInvested > 0 {
		summary.ROIPercent = summary.TotalReturns / summary.TotalInvested * 100
	}

	for _, invType := range model.InvestmentTypes() {
		if _, ok := invested[invType]; ok {
			summary.ByType = append(summary.ByType, TypeTotal{
				Type:     invType,
				Invested: invested[invType],
				Returns:  returns[invType],
			})
		}
	}
	return summary, nil
}
