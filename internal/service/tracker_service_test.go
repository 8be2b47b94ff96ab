package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupeemate/backend/internal/model"
)

func TestExpenseSummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Register(ctx, "asha", "secret123", model.CategoryStudent)
	require.NoError(t, err)

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	adds := []struct {
		category model.ExpenseCategory
		amount   float64
	}{
		{model.ExpenseFood, 1200},
		{model.ExpenseFood, 800},
		{model.ExpenseTransport, 500},
		{model.ExpenseEducation, 3000},
	}
	for i, a := range adds {
		_, err := svc.AddExpense(ctx, "asha", a.category, a.amount, "", day.AddDate(0, 0, i))
		require.NoError(t, err)
	}

	summary, err := svc.SummarizeExpenses(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, 5500.0, summary.Total)
	assert.Equal(t, 4, summary.Count)

	byCategory := make(map[model.ExpenseCategory]float64)
	for _, ct := range summary.ByCategory {
		byCategory[ct.Category] = ct.Total
	}
	assert.Equal(t, 2000.0, byCategory[model.ExpenseFood])
	assert.Equal(t, 500.0, byCategory[model.ExpenseTransport])
	assert.Equal(t, 3000.0, byCategory[model.ExpenseEducation])
	assert.Len(t, summary.ByCategory, 3, "only categories with spend appear")
}

func TestExpenseSummaryEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Register(ctx, "asha", "secret123", model.CategoryStudent)
	require.NoError(t, err)

	summary, err := svc.SummarizeExpenses(ctx, "asha")
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Count)
	assert.Empty(t, summary.ByCategory)
}

func TestInvestmentSummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Register(ctx, "ravi", "secret123", model.CategoryProfessional)
	require.NoError(t, err)

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.AddInvestment(ctx, "ravi", model.InvestmentPPF, 60000, 4200, day)
	require.NoError(t, err)
	_, err = svc.AddInvestment(ctx, "ravi", model.InvestmentStocks, 40000, -2000, day)
	require.NoError(t, err)
	_, err = svc.AddInvestment(ctx, "ravi", model.InvestmentPPF, 40000, 2800, day)
	require.NoError(t, err)

	summary, err := svc.SummarizeInvestments(ctx, "ravi")
	require.NoError(t, err)
	assert.Equal(t, 140000.0, summary.TotalInvested)
	assert.Equal(t, 5000.0, summary.TotalReturns)
	assert.Equal(t, 145000.0, summary.PortfolioValue)
	assert.InDelta(t, 5000.0/140000.0*100, summary.ROIPercent, 1e-9)
	assert.Equal(t, 3, summary.Count)

	byType := make(map[model.InvestmentType]TypeTotal)
	for _, tt := range summary.ByType {
		byType[tt.Type] = tt
	}
	assert.Equal(t, 100000.0, byType[model.InvestmentPPF].Invested)
	assert.Equal(t, 7000.0, byType[model.InvestmentPPF].Returns)
	assert.Equal(t, -2000.0, byType[model.InvestmentStocks].Returns)
}

func TestInvestmentSummaryZeroInvested(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Register(ctx, "ravi", "secret123", model.CategoryProfessional)
	require.NoError(t, err)

	summary, err := svc.SummarizeInvestments(ctx, "ravi")
	require.NoError(t, err)
	assert.Zero(t, summary.ROIPercent, "ROI defined as 0 with no investments")
}
