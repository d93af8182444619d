package practice

import (
	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

// QuestionType is the form a practice test question takes.
type QuestionType int

const (
	TypeMultipleChoice QuestionType = iota
	TypeTrueFalse
	TypeMatching
	TypeWritten
)

// Question is one question in a practice test. Only the fields for its
// type are populated.
type Question struct {
	Type QuestionType

	// Source card for single-card question types.
	Card card.Card

	// Multiple choice.
	Choices      []string
	CorrectIndex int

	// True/false: the statement pairs the card front with ShownBack,
	// which may be a decoy from another card.
	ShownBack string
	Truth     bool

	// Matching: Left holds fronts, Right holds shuffled backs.
	// CorrectMatch[i] is the Right index that belongs to Left[i].
	Left         []string
	Right        []string
	CorrectMatch []int
}

// Answer is the learner's response to one question. Only the field for
// the question's type is meaningful.
type Answer struct {
	Choice  int
	Bool    bool
	Matches []int
	Text    string

	// Given marks the question as answered; unanswered questions score
	// as incorrect.
	Given bool
}

// Result is the bulk score of a finished test. Practice tests never
// touch mastery state; only the aggregate score is kept.
type Result struct {
	Score   int
	Total   int
	Correct []bool
}
