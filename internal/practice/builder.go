package practice

import (
	"math/rand"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

// DefaultSize is the default number of questions in a practice test.
const DefaultSize = 10

// matchingGroup is how many cards a single matching question covers.
const matchingGroup = 4

// choiceCount is the option count for multiple-choice questions.
const choiceCount = 4

var placeholders = []string{
	"None of these",
	"All of these",
	"Not listed here",
}

// Test is a fixed, type-mixed practice test generated up front. The
// learner answers in sequence and the whole test is scored in one pass
// at the end.
type Test struct {
	SetID     string
	Questions []Question
	Answers   []Answer
}

// Build assembles a practice test of at most size questions from the
// set's cards. Each card appears in at most one question. Question
// types rotate through multiple choice, true/false, matching, and
// written; matching questions only appear when enough cards remain to
// fill a group.
func Build(setID string, cards []card.Card, size int, src rand.Source) *Test {
	if size <= 0 {
		size = DefaultSize
	}
	rng := rand.New(src)

	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	t := &Test{SetID: setID}
	types := []QuestionType{TypeMultipleChoice, TypeTrueFalse, TypeMatching, TypeWritten}
	next := 0

	for len(shuffled) > 0 && len(t.Questions) < size {
		qt := types[next%len(types)]
		next++

		if qt == TypeMatching {
			if len(shuffled) < matchingGroup {
				continue
			}
			group := shuffled[:matchingGroup]
			shuffled = shuffled[matchingGroup:]
			t.Questions = append(t.Questions, buildMatching(group, rng))
			continue
		}

		c := shuffled[0]
		shuffled = shuffled[1:]

		switch qt {
		case TypeMultipleChoice:
			t.Questions = append(t.Questions, buildMultipleChoice(c, cards, rng))
		case TypeTrueFalse:
			t.Questions = append(t.Questions, buildTrueFalse(c, cards, rng))
		case TypeWritten:
			t.Questions = append(t.Questions, Question{Type: TypeWritten, Card: c})
		}
	}

	t.Answers = make([]Answer, len(t.Questions))
	return t
}

// SetAnswer records the learner's response to question i.
func (t *Test) SetAnswer(i int, a Answer) {
	a.Given = true
	t.Answers[i] = a
}

func buildMultipleChoice(c card.Card, pool []card.Card, rng *rand.Rand) Question {
	correct := c.Back

	seen := map[string]bool{correct: true}
	var candidates []string
	for _, other := range pool {
		if other.Front == c.Front && other.Back == c.Back {
			continue
		}
		for _, text := range []string{other.Back, other.Front} {
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			candidates = append(candidates, text)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	choices := []string{correct}
	for _, d := range candidates {
		if len(choices) == choiceCount {
			break
		}
		choices = append(choices, d)
	}
	for _, p := range placeholders {
		if len(choices) == choiceCount {
			break
		}
		if !seen[p] {
			seen[p] = true
			choices = append(choices, p)
		}
	}
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	q := Question{Type: TypeMultipleChoice, Card: c, Choices: choices}
	for i, ch := range choices {
		if ch == correct {
			q.CorrectIndex = i
			break
		}
	}
	return q
}

// buildTrueFalse pairs the card front with either its own back or a
// decoy back from another card, each with even odds.
func buildTrueFalse(c card.Card, pool []card.Card, rng *rand.Rand) Question {
	q := Question{Type: TypeTrueFalse, Card: c, ShownBack: c.Back, Truth: true}

	var decoys []string
	for _, other := range pool {
		if other.Back != c.Back && other.Back != "" {
			decoys = append(decoys, other.Back)
		}
	}
	if len(decoys) > 0 && rng.Intn(2) == 0 {
		q.ShownBack = decoys[rng.Intn(len(decoys))]
		q.Truth = false
	}
	return q
}

func buildMatching(group []card.Card, rng *rand.Rand) Question {
	q := Question{Type: TypeMatching}
	for _, c := range group {
		q.Left = append(q.Left, c.Front)
	}

	perm := rng.Perm(len(group))
	q.Right = make([]string, len(group))
	q.CorrectMatch = make([]int, len(group))
	for leftIdx, rightIdx := range perm {
		q.Right[rightIdx] = group[leftIdx].Back
		q.CorrectMatch[leftIdx] = rightIdx
	}
	return q
}
