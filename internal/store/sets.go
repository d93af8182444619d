package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

// ErrSetNotFound is returned when a study set id does not exist.
var ErrSetNotFound = errors.New("study set not found")

// StudySet is a named collection of cards.
type StudySet struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Cards     []card.Card
}

// SetRepo provides access to study sets and their cards.
type SetRepo interface {
	// Create stores a new set with the given title and cards and returns
	// it with a freshly generated id.
	Create(ctx context.Context, title string, cards []card.Card) (*StudySet, error)

	// Get returns the set with its cards in stored order, or
	// ErrSetNotFound.
	Get(ctx context.Context, id string) (*StudySet, error)

	// List returns all sets without their cards, newest first.
	List(ctx context.Context) ([]StudySet, error)

	// Delete removes a set and everything attached to it.
	Delete(ctx context.Context, id string) error

	// ReplaceCards overwrites the card list of an existing set.
	ReplaceCards(ctx context.Context, id string, cards []card.Card) error
}

type setRepo struct {
	db *sql.DB
}

func (r *setRepo) Create(ctx context.Context, title string, cards []card.Card) (*StudySet, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate set id: %w", err)
	}

	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO study_sets (id, title, created_at) VALUES (?, ?, ?)`,
		id, title, now,
	); err != nil {
		return nil, fmt.Errorf("insert study set: %w", err)
	}

	if err := insertCards(ctx, tx, id, cards); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return &StudySet{ID: id, Title: title, CreatedAt: now, Cards: cards}, nil
}

func (r *setRepo) Get(ctx context.Context, id string) (*StudySet, error) {
	var set StudySet
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at FROM study_sets WHERE id = ?`, id)
	if err := row.Scan(&set.ID, &set.Title, &set.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("load study set %s: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT front, back FROM cards WHERE set_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("load cards for set %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var c card.Card
		if err := rows.Scan(&c.Front, &c.Back); err != nil {
			return nil, fmt.Errorf("scan card row: %w", err)
		}
		set.Cards = append(set.Cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card rows: %w", err)
	}

	return &set, nil
}

func (r *setRepo) List(ctx context.Context) ([]StudySet, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, created_at FROM study_sets ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list study sets: %w", err)
	}
	defer rows.Close()

	var sets []StudySet
	for rows.Next() {
		var s StudySet
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan study set row: %w", err)
		}
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate study set rows: %w", err)
	}
	return sets, nil
}

func (r *setRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM study_sets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete study set %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *setRepo) ReplaceCards(ctx context.Context, id string, cards []card.Card) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists int
	row := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_sets WHERE id = ?`, id)
	if err := row.Scan(&exists); err != nil {
		return fmt.Errorf("check study set %s: %w", id, err)
	}
	if exists == 0 {
		return ErrSetNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE set_id = ?`, id); err != nil {
		return fmt.Errorf("clear cards for set %s: %w", id, err)
	}

	if err := insertCards(ctx, tx, id, cards); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertCards(ctx context.Context, tx *sql.Tx, setID string, cards []card.Card) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cards (set_id, position, front, back) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare card insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range cards {
		if _, err := stmt.ExecContext(ctx, setID, i, c.Front, c.Back); err != nil {
			return fmt.Errorf("insert card %d: %w", i, err)
		}
	}
	return nil
}
