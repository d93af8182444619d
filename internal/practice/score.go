package practice

import (
	"context"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

// Grader judges written answers. Choice-based questions are scored
// locally without it.
type Grader interface {
	Grade(ctx context.Context, c card.Card, answer string) mastery.Outcome
}

// Score grades the whole test in one pass. Choice, true/false, and
// matching questions are scored by direct comparison; written answers
// go through the grader in a deferred batch, which is why scoring waits
// until the test is finished. Matching questions are all-or-nothing.
func (t *Test) Score(ctx context.Context, g Grader) Result {
	res := Result{
		Total:   len(t.Questions),
		Correct: make([]bool, len(t.Questions)),
	}

	for i, q := range t.Questions {
		a := t.Answers[i]
		if !a.Given {
			continue
		}

		switch q.Type {
		case TypeMultipleChoice:
			res.Correct[i] = a.Choice == q.CorrectIndex
		case TypeTrueFalse:
			res.Correct[i] = a.Bool == q.Truth
		case TypeMatching:
			res.Correct[i] = matchesAll(q.CorrectMatch, a.Matches)
		case TypeWritten:
			// Deferred to the written batch below.
		}
	}

	for i, q := range t.Questions {
		if q.Type != TypeWritten || !t.Answers[i].Given {
			continue
		}
		outcome := g.Grade(ctx, q.Card, t.Answers[i].Text)
		res.Correct[i] = outcome == mastery.OutcomeCorrect
	}

	for _, ok := range res.Correct {
		if ok {
			res.Score++
		}
	}
	return res
}

func matchesAll(want, got []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
