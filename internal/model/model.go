package model

import "time"

// User is an account plus the profile fields the budget and tax features read.
// Password hashes never leave the store layer in API responses.
type User struct {
	Username      string       `json:"username"`
	PasswordHash  string       `json:"-"`
	Category      UserCategory `json:"category"`
	MonthlyIncome float64      `json:"monthly_income"`
	SavingsGoal   float64      `json:"savings_goal"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Expense is a single logged expense. Immutable once created.
type Expense struct {
	ID       string          `json:"id"`
	Username string          `json:"username"`
	Category ExpenseCategory `json:"category"`
	Amount   float64         `json:"amount"`
	Note     string          `json:"note"`
	Date     time.Time       `json:"date"`
}

// Investment is a single logged investment. Returns may be negative.
type Investment struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Type     InvestmentType `json:"type"`
	Amount   float64        `json:"amount"`
	Returns  float64        `json:"returns"`
	Date     time.Time      `json:"date"`
}

// ChatRecord is one prompt/response exchange in the append-only chat log.
type ChatRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
