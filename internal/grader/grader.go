package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
	"github.com/thomasmccollum2508/studylo-sub000/internal/llm"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

// Config holds configuration for the semantic evaluator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   64,
		Temperature: 0.0,
	}
}

// Grader judges typed answers against a card's back side. Literal
// matches are decided locally; everything else is sent to the model.
// Grading is fail-closed: when the evaluator cannot produce a verdict,
// the answer counts as incorrect. A single answer never triggers more
// than one model call, so the provider passed in should not retry.
type Grader struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Grader. A nil provider disables semantic evaluation;
// only literal matches will grade as correct.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// Grade returns the outcome for a typed answer to the card.
func (g *Grader) Grade(ctx context.Context, c card.Card, answer string) mastery.Outcome {
	got := strings.TrimSpace(answer)
	if got == "" {
		return mastery.OutcomeIncorrect
	}

	want := strings.TrimSpace(c.Back)
	if strings.EqualFold(got, want) {
		return mastery.OutcomeCorrect
	}

	if g.provider == nil {
		return mastery.OutcomeIncorrect
	}

	ctx = llm.WithPurpose(ctx, "grade-answer")

	userMsg, err := buildGradeMessage(c, got)
	if err != nil {
		return mastery.OutcomeIncorrect
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return mastery.OutcomeIncorrect
	}

	var verdict struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return mastery.OutcomeIncorrect
	}

	if verdict.Result == "correct" {
		return mastery.OutcomeCorrect
	}
	return mastery.OutcomeIncorrect
}

const gradeSystemPrompt = `You are grading flashcard answers. Decide whether the learner's answer expresses the same meaning as the expected answer.

Instructions:
- Accept paraphrases, synonyms, and different word order when the meaning matches.
- Accept minor spelling mistakes that leave the meaning unambiguous.
- Reject answers that are incomplete, contradictory, or about something else.
- When in doubt, mark the answer incorrect.`

var gradeUserTemplate = template.Must(template.New("grade").Parse(`Question: {{.Front}}
Expected answer: {{.Back}}
Learner's answer: {{.Answer}}`))

func buildGradeMessage(c card.Card, answer string) (string, error) {
	var buf bytes.Buffer
	err := gradeUserTemplate.Execute(&buf, struct {
		Front  string
		Back   string
		Answer string
	}{Front: c.Front, Back: c.Back, Answer: answer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
