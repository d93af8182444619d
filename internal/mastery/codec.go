package mastery

import (
	"encoding/json"
	"time"
)

// rawRecord holds every field that any persisted record shape has ever
// used. Shape detection is explicit: the presence of "status" marks the
// current shape, "level"/"is_mastered" mark the legacy numeric shape.
type rawRecord struct {
	// Current shape.
	Status         *string    `json:"status"`
	CorrectStreak  *int       `json:"correct_streak"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`

	// Legacy shape: a numeric mastery level plus a mastered flag.
	Level      *int  `json:"level"`
	IsMastered *bool `json:"is_mastered"`
}

// DecodeRecords parses a persisted mastery blob, normalizing legacy
// shapes and recovering from malformed entries with the New default.
// It never fails: corrupt data degrades to defaults rather than
// surfacing an error. Normalization is idempotent — decoding an
// already-normalized blob is a no-op.
func DecodeRecords(data []byte) Records {
	records := make(Records)
	if len(data) == 0 {
		return records
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return records
	}

	for id, entry := range raw {
		records[id] = decodeRecord(entry)
	}
	return records
}

func decodeRecord(entry json.RawMessage) Record {
	var r rawRecord
	if err := json.Unmarshal(entry, &r); err != nil {
		return NewRecord()
	}

	switch {
	case r.Status != nil:
		return normalizeCurrent(r)
	case r.Level != nil || r.IsMastered != nil:
		return normalizeLegacy(r)
	default:
		return NewRecord()
	}
}

// normalizeCurrent sanitizes a current-shape record so the package
// invariants hold regardless of what was on disk.
func normalizeCurrent(r rawRecord) Record {
	rec := NewRecord()

	switch Status(*r.Status) {
	case StatusLearning:
		rec.Status = StatusLearning
	case StatusMastered:
		rec.Status = StatusMastered
	default:
		// Unrecognized status falls back to New; New implies a zero
		// streak and no review timestamp.
		return rec
	}

	if r.CorrectStreak != nil && *r.CorrectStreak > 0 {
		rec.CorrectStreak = *r.CorrectStreak
	}
	if rec.Status == StatusMastered && rec.CorrectStreak < Threshold {
		rec.CorrectStreak = Threshold
	}
	rec.LastReviewedAt = r.LastReviewedAt
	return rec
}

// normalizeLegacy converts the old numeric-level shape:
// is_mastered → Mastered with the threshold streak; otherwise a
// positive level maps to Learning with streak min(level, Threshold-1),
// and level 0 is the New default.
func normalizeLegacy(r rawRecord) Record {
	rec := NewRecord()

	if r.IsMastered != nil && *r.IsMastered {
		rec.Status = StatusMastered
		rec.CorrectStreak = Threshold
		return rec
	}

	level := 0
	if r.Level != nil {
		level = *r.Level
	}
	if level <= 0 {
		return rec
	}

	rec.Status = StatusLearning
	rec.CorrectStreak = level
	if rec.CorrectStreak > Threshold-1 {
		rec.CorrectStreak = Threshold - 1
	}
	return rec
}

// EncodeRecords serializes records in the current shape.
func EncodeRecords(records Records) ([]byte, error) {
	return json.Marshal(records)
}
