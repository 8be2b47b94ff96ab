package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rupeemate/backend/internal/model"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// systemInstruction builds the assistant persona for a user category.
func systemInstruction(category model.UserCategory) string {
	return fmt.Sprintf(
		"You are a helpful financial assistant specializing in Indian personal finance. "+
			"Give concise, practical guidance with India-specific examples. "+
			"User type: %s. Include relevant tax laws, investment options like PPF, NPS, ELSS, "+
			"and Indian banking practices where applicable.",
		category,
	)
}

// Chat sends a message to the generation service and appends the exchange to
// the user's chat log. On generation failure nothing is persisted and the
// error is returned for the handler to surface.
func (s *FinanceService) Chat(ctx context.Context, username, message string) (*model.ChatRecord, error) {
	user, err := s.store.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	response, err := s.generator.Generate(ctx, message, systemInstruction(user.Category))
	if err != nil {
		return nil, err
	}

	record := &model.ChatRecord{
		ID:        uuid.New().String(),
		Username:  username,
		Prompt:    message,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}

	if err := s.store.CreateChatRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("save chat record: %w", err)
	}
	return record, nil
}

// ChatHistory returns recent exchanges, newest first. Limit defaults to 10
// and is capped at 100.
func (s *FinanceService) ChatHistory(ctx context.Context, username string, limit int) ([]*model.ChatRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.store.ListChatRecords(ctx, username, limit)
}

// AssistantHealth probes the generation backend.
func (s *FinanceService) AssistantHealth(ctx context.Context) error {
	return s.generator.Health(ctx)
}
