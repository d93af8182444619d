package learn

import (
	"context"
	"fmt"

	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
	"github.com/thomasmccollum2508/studylo-sub000/internal/store"
)

// StoreSaver persists mastery mappings through a store.MasteryRepo.
// Each save encodes and overwrites the full document for the set.
type StoreSaver struct {
	repo store.MasteryRepo
}

// NewStoreSaver creates a StoreSaver.
func NewStoreSaver(repo store.MasteryRepo) *StoreSaver {
	return &StoreSaver{repo: repo}
}

func (s *StoreSaver) SaveMastery(ctx context.Context, setID string, records mastery.Records) error {
	data, err := mastery.EncodeRecords(records)
	if err != nil {
		return fmt.Errorf("encode mastery records: %w", err)
	}
	return s.repo.Save(ctx, setID, data)
}

// LoadMastery loads and decodes the persisted mapping for a set. A
// missing or unreadable document yields an empty mapping.
func LoadMastery(ctx context.Context, repo store.MasteryRepo, setID string) (mastery.Records, error) {
	data, err := repo.Load(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("load mastery state: %w", err)
	}
	return mastery.DecodeRecords(data), nil
}
