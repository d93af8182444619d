package learn

import (
	"math/rand"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

// QuestionMode is the learner's question-type preference for a session.
type QuestionMode int

const (
	ModeMultipleChoice QuestionMode = iota
	ModeTyped
	ModeBoth
)

// QuestionKind is the concrete form a single question takes.
type QuestionKind int

const (
	KindMultipleChoice QuestionKind = iota
	KindTyped
)

// choiceCount is the number of options shown for a multiple-choice
// question (one correct answer plus up to three distractors).
const choiceCount = 4

// Question is one prompt served to the learner.
type Question struct {
	CardID string
	Card   card.Card
	Kind   QuestionKind

	// Multiple-choice only.
	Choices      []string
	CorrectIndex int
}

// placeholders fill out the choice list when the set is too small to
// supply three unique distractors.
var placeholders = []string{
	"None of these",
	"All of these",
	"Not listed here",
}

// buildQuestion creates a question for the card. Distractors are drawn
// from the other cards' front and back text, deduplicated and shuffled.
func buildQuestion(c card.Card, id string, kind QuestionKind, pool []card.Card, rng *rand.Rand) Question {
	q := Question{CardID: id, Card: c, Kind: kind}
	if kind != KindMultipleChoice {
		return q
	}

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
	for i, ch := range choices {
		if ch == correct {
			q.CorrectIndex = i
			break
		}
	}
	q.Choices = choices
	return q
}
