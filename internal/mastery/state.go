// Package mastery tracks per-card recall state and the transition rules
// that promote and demote cards between New, Learning and Mastered.
package mastery

import "time"

// Status represents a card's position in the mastery lifecycle.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

// Threshold is the consecutive-correct streak required for promotion to
// Mastered.
const Threshold = 2

// Outcome is the graded result of one recall attempt.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
	// OutcomeUnknown is an explicit "I don't know" skip. It counts as a
	// miss.
	OutcomeUnknown Outcome = "unknown"
)

// Record is the per-card mastery state for one study set.
type Record struct {
	Status         Status     `json:"status"`
	CorrectStreak  int        `json:"correct_streak"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
}

// NewRecord returns the implicit default record for a card that has
// never been reviewed.
func NewRecord() Record {
	return Record{Status: StatusNew, CorrectStreak: 0, LastReviewedAt: nil}
}

// Apply returns the record after one graded outcome. It is the single
// canonical transition rule; every study surface routes through it.
//
// Correct: streak increments, New becomes Learning, and reaching the
// threshold promotes to Mastered in the same step.
// Incorrect/Unknown: immediate demotion to Learning with a zeroed
// streak — mastery is not sticky, one miss is enough.
func Apply(rec Record, outcome Outcome, now time.Time) Record {
	switch outcome {
	case OutcomeCorrect:
		rec.CorrectStreak++
		if rec.Status == StatusNew {
			rec.Status = StatusLearning
		}
		if rec.CorrectStreak >= Threshold {
			rec.Status = StatusMastered
		}
	default:
		rec.Status = StatusLearning
		rec.CorrectStreak = 0
	}
	t := now
	rec.LastReviewedAt = &t
	return rec
}
