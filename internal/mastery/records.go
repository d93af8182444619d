package mastery

import (
	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

// Records is the per-set mapping from card identifier to mastery record.
type Records map[string]Record

// CardWithMastery joins a flashcard with its mastery record. It is the
// working unit handed to the round builder and session controller.
type CardWithMastery struct {
	Card   card.Card
	ID     string
	Record Record
}

// Initialize joins each card with its persisted record, falling back to
// the New default for cards that have never been reviewed. An absent
// record and the default record are equivalent.
func Initialize(cards []card.Card, records Records) []CardWithMastery {
	out := make([]CardWithMastery, 0, len(cards))
	for _, c := range cards {
		id := card.ID(c)
		rec, ok := records[id]
		if !ok {
			rec = NewRecord()
		}
		out = append(out, CardWithMastery{Card: c, ID: id, Record: rec})
	}
	return out
}

// Reset restores a single card's record to the New default.
func (r Records) Reset(cardID string) {
	r[cardID] = NewRecord()
}

// ResetAll restores every record in the set to the New default.
func (r Records) ResetAll() {
	for id := range r {
		r[id] = NewRecord()
	}
}

// CountByStatus tallies records per status for stats display.
func (r Records) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, rec := range r {
		counts[rec.Status]++
	}
	return counts
}
