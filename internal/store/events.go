package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMEventData describes one model request for the event log.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo appends model request events.
type EventRepo interface {
	AppendLLMEvent(ctx context.Context, data LLMEventData) error
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}
