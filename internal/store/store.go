package store

import (
	"context"
	"errors"

	"github.com/rupeemate/backend/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique key (username) already exists.
var ErrDuplicate = errors.New("record already exists")

// Store defines the interface for all database operations used by the service
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, username string, category model.UserCategory, monthlyIncome, savingsGoal float64) error

	// Expense operations
	CreateExpense(ctx context.Context, expense *model.Expense) error
	ListExpenses(ctx context.Context, username string, limit int) ([]*model.Expense, error)

	// Investment operations
	CreateInvestment(ctx context.Context, investment *model.Investment) error
	ListInvestments(ctx context.Context, username string, limit int) ([]*model.Investment, error)

	// Chat log operations. Lists return newest first.
	CreateChatRecord(ctx context.Context, record *model.ChatRecord) error
	ListChatRecords(ctx context.Context, username string, limit int) ([]*model.ChatRecord, error)
}
