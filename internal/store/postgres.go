package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rupeemate/backend/internal/model"
)

// PostgresStore implements Store backed by PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed store on an open connection pool.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the schema if it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT 'Student',
			monthly_income DOUBLE PRECISION NOT NULL DEFAULT 0,
			savings_goal DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL REFERENCES users(username),
			category TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL REFERENCES users(username),
			type TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			returns DOUBLE PRECISION NOT NULL DEFAULT 0,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS chat_history (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL REFERENCES users(username),
			prompt TEXT NOT NULL,
			response TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_username ON expenses(username)`,
		`CREATE INDEX IF NOT EXISTS idx_investments_username ON investments(username)`,
		`CREATE INDEX IF NOT EXISTS idx_chat_history_username ON chat_history(username)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// User operations

func (s *PostgresStore) CreateUser(ctx context.Context, user *model.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, category, monthly_income, savings_goal, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.Username, user.PasswordHash, user.Category, user.MonthlyIncome, user.SavingsGoal, user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetUser(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.QueryRowContext(ctx,
		`SELECT username, password_hash, category, monthly_income, savings_goal, created_at
		 FROM users WHERE username = $1`,
		username,
	).Scan(&user.Username, &user.PasswordHash, &user.Category, &user.MonthlyIncome, &user.SavingsGoal, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *PostgresStore) UpdateUserProfile(ctx context.Context, username string, category model.UserCategory, monthlyIncome, savingsGoal float64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET category = $1, monthly_income = $2, savings_goal = $3 WHERE username = $4`,
		category, monthlyIncome, savingsGoal, username,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Expense operations

func (s *PostgresStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, username, category, amount, note, date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		expense.ID, expense.Username, expense.Category, expense.Amount, expense.Note, expense.Date,
	)
	if err != nil {
		return fmt.Errorf("create expense: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListExpenses(ctx context.Context, username string, limit int) ([]*model.Expense, error) {
	query := `SELECT id, username, category, amount, note, date
		 FROM expenses WHERE username = $1 ORDER BY date DESC, id`
	args := []any{username}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var result []*model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Username, &e.Category, &e.Amount, &e.Note, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

// Investment operations

func (s *PostgresStore) CreateInvestment(ctx context.Context, investment *model.Investment) error {
	if investment.ID == "" {
		investment.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO investments (id, username, type, amount, returns, date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		investment.ID, investment.Username, investment.Type, investment.Amount, investment.Returns, investment.Date,
	)
	if err != nil {
		return fmt.Errorf("create investment: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListInvestments(ctx context.Context, username string, limit int) ([]*model.Investment, error) {
	query := `SELECT id, username, type, amount, returns, date
		 FROM investments WHERE username = $1 ORDER BY date DESC, id`
	args := []any{username}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	var result []*model.Investment
	for rows.Next() {
		var inv model.Investment
		if err := rows.Scan(&inv.ID, &inv.Username, &inv.Type, &inv.Amount, &inv.Returns, &inv.Date); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		result = append(result, &inv)
	}
	return result, rows.Err()
}

// Chat log operations

func (s *PostgresStore) CreateChatRecord(ctx context.Context, record *model.ChatRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_history (id, username, prompt, response, timestamp)
		 VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.Username, record.Prompt, record.Response, record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create chat record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListChatRecords(ctx context.Context, username string, limit int) ([]*model.ChatRecord, error) {
	query := `SELECT id, username, prompt, response, timestamp
		 FROM chat_history WHERE username = $1 ORDER BY timestamp DESC, id`
	args := []any{username}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chat records: %w", err)
	}
	defer rows.Close()

	var result []*model.ChatRecord
	for rows.Next() {
		var r model.ChatRecord
		if err := rows.Scan(&r.ID, &r.Username, &r.Prompt, &r.Response, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat record: %w", err)
		}
		result = append(result, &r)
	}
	return result, rows.Err()
}
