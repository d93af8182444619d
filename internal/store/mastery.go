package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// MasteryRepo stores the mastery document for a set as an opaque JSON
// blob. The whole document is replaced on every save; the most recent
// write wins.
type MasteryRepo interface {
	// Load returns the stored document for the set, or (nil, nil) when
	// nothing has been saved yet.
	Load(ctx context.Context, setID string) ([]byte, error)

	// Save overwrites the document for the set.
	Save(ctx context.Context, setID string, data []byte) error

	// Delete removes the document for the set. Deleting an absent
	// document is not an error.
	Delete(ctx context.Context, setID string) error
}

type masteryRepo struct {
	db *sql.DB
}

func (r *masteryRepo) Load(ctx context.Context, setID string) ([]byte, error) {
	var data []byte
	row := r.db.QueryRowContext(ctx,
		`SELECT data FROM mastery_state WHERE set_id = ?`, setID)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load mastery state for set %s: %w", setID, err)
	}
	return data, nil
}

func (r *masteryRepo) Save(ctx context.Context, setID string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mastery_state (set_id, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(set_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, setID, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save mastery state for set %s: %w", setID, err)
	}
	return nil
}

func (r *masteryRepo) Delete(ctx context.Context, setID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM mastery_state WHERE set_id = ?`, setID); err != nil {
		return fmt.Errorf("delete mastery state for set %s: %w", setID, err)
	}
	return nil
}
