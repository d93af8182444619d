package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TestResult is one completed practice test for a set.
type TestResult struct {
	ID      int64
	SetID   string
	Score   int
	Total   int
	TakenAt time.Time
}

// ResultRepo stores practice test outcomes.
type ResultRepo interface {
	// Append records a finished test.
	Append(ctx context.Context, setID string, score, total int) error

	// List returns all results for a set, newest first.
	List(ctx context.Context, setID string) ([]TestResult, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, setID string, score, total int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO test_results (set_id, score, total, taken_at)
		VALUES (?, ?, ?, ?)
	`, setID, score, total, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record test result for set %s: %w", setID, err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, setID string) ([]TestResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, set_id, score, total, taken_at
		FROM test_results WHERE set_id = ?
		ORDER BY taken_at DESC, id DESC
	`, setID)
	if err != nil {
		return nil, fmt.Errorf("list test results for set %s: %w", setID, err)
	}
	defer rows.Close()

	var results []TestResult
	for rows.Next() {
		var tr TestResult
		if err := rows.Scan(&tr.ID, &tr.SetID, &tr.Score, &tr.Total, &tr.TakenAt); err != nil {
			return nil, fmt.Errorf("scan test result row: %w", err)
		}
		results = append(results, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate test result rows: %w", err)
	}
	return results, nil
}
