package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rupeemate/backend/internal/model"
)

// MemoryStore implements Store with in-memory storage. Used for local
// development and tests.
type MemoryStore struct {
	mu sync.RWMutex

	users       map[string]*model.User
	expenses    map[string]*model.Expense
	investments map[string]*model.Investment
	chatRecords map[string]*model.ChatRecord
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[string]*model.User),
		expenses:    make(map[string]*model.Expense),
		investments: make(map[string]*model.Investment),
		chatRecords: make(map[string]*model.ChatRecord),
	}
}

// User operations

func (m *MemoryStore) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return ErrDuplicate
	}

	u := *user
	m.users[user.Username] = &u
	return nil
}

func (m *MemoryStore) GetUser(ctx context.Context, username string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return nil, ErrNotFound
	}

	u := *user
	return &u, nil
}

func (m *MemoryStore) UpdateUserProfile(ctx context.Context, username string, category model.UserCategory, monthlyIncome, savingsGoal float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return ErrNotFound
	}

	user.Category = category
	user.MonthlyIncome = monthlyIncome
	user.SavingsGoal = savingsGoal
	return nil
}

// Expense operations

func (m *MemoryStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	e := *expense
	m.expenses[expense.ID] = &e
	return nil
}

func (m *MemoryStore) ListExpenses(ctx context.Context, username string, limit int) ([]*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*model.Expense
	for _, expense := range m.expenses {
		if expense.Username != username {
			continue
		}
		e := *expense
		result = append(result, &e)
	}

	// Newest first; ID breaks ties so ordering is stable across calls.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Investment operations

func (m *MemoryStore) CreateInvestment(ctx context.Context, investment *model.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if investment.ID == "" {
		investment.ID = uuid.New().String()
	}

	inv := *investment
	m.investments[investment.ID] = &inv
	return nil
}

func (m *MemoryStore) ListInvestments(ctx context.Context, username string, limit int) ([]*model.Investment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*model.Investment
	for _, investment := range m.investments {
		if investment.Username != username {
			continue
		}
		inv := *investment
		result = append(result, &inv)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Chat log operations

func (m *MemoryStore) CreateChatRecord(ctx context.Context, record *model.ChatRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	r := *record
	m.chatRecords[record.ID] = &r
	return nil
}

func (m *MemoryStore) ListChatRecords(ctx context.Context, username string, limit int) ([]*model.ChatRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*model.ChatRecord
	for _, record := range m.chatRecords {
		if record.Username != username {
			continue
		}
		r := *record
		result = append(result, &r)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.After(result[j].Timestamp)
		}
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
