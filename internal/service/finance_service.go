package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rupeemate/backend/internal/auth"
	"github.com/rupeemate/backend/internal/finance"
	"github.com/rupeemate/backend/internal/model"
	"github.com/rupeemate/backend/internal/store"
)

// ErrInvalidCredentials is returned by Login for a bad username or password.
// Deliberately indistinguishable between the two cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Generator is the slice of the llm client the service needs.
type Generator interface {
	Generate(ctx context.Context, prompt, system string) (string, error)
	Health(ctx context.Context) error
}

// FinanceService implements the application's domain operations over a Store.
type FinanceService struct {
	store     store.Store
	generator Generator
	jwtSecret []byte
}

// NewFinanceService creates the service.
func NewFinanceService(st store.Store, generator Generator, jwtSecret []byte) *FinanceService {
	return &FinanceService{
		store:     st,
		generator: generator,
		jwtSecret: jwtSecret,
	}
}

// Register creates a new account with a hashed password.
func (s *FinanceService) Register(ctx context.Context, username, password string, category model.UserCategory) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
		Category:     category,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a signed token.
func (s *FinanceService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return auth.GenerateToken(username, s.jwtSecret)
}

// GetProfile returns the user's profile.
func (s *FinanceService) GetProfile(ctx context.Context, username string) (*model.User, error) {
	return s.store.GetUser(ctx, username)
}

// UpdateProfile mutates the profile fields and returns the updated user.
func (s *FinanceService) UpdateProfile(ctx context.Context, username string, category model.UserCategory, monthlyIncome, savingsGoal float64) (*model.User, error) {
	if err := s.store.UpdateUserProfile(ctx, username, category, monthlyIncome, savingsGoal); err != nil {
		return nil, err
	}
	return s.store.GetUser(ctx, username)
}

// BudgetRecommendation is a budget split for one user, chart-ready.
type BudgetRecommendation struct {
	Category    model.UserCategory `json:"category"`
	Income      float64            `json:"income"`
	Allocations map[string]float64 `json:"allocations"`
	// Fractional is true when Income is zero and Allocations holds shares
	// instead of rupee amounts.
	Fractional bool `json:"fractional"`
}

// RecommendBudget computes the budget split for the user's category. A
// non-nil incomeOverride replaces the profile income.
func (s *FinanceService) RecommendBudget(ctx context.Context, username string, incomeOverride *float64) (*BudgetRecommendation, error) {
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	income := user.MonthlyIncome
	if incomeOverride != nil {
		income = *incomeOverride
	}

	return &BudgetRecommendation{
		Category:    user.Category,
		Income:      income,
		Allocations: finance.AllocateBudget(user.Category, income),
		Fractional:  income <= 0,
	}, nil
}
