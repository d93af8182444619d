package cardgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
	"github.com/thomasmccollum2508/studylo-sub000/internal/llm"
)

// Config holds configuration for deck generation.
type Config struct {
	// CardCount is how many cards to ask for. The model may return
	// fewer when the notes are thin.
	CardCount   int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		CardCount:   20,
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Deck is a generated study set.
type Deck struct {
	Title string
	Cards []card.Card
}

// Generator turns free-form study notes into a flashcard deck. The
// provider passed in should carry the retry policy for generation;
// rate limits during card generation are retried with backoff, unlike
// grading calls.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

type deckOutput struct {
	Title string `json:"title"`
	Cards []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"cards"`
}

// Generate produces a deck from the given notes.
func (g *Generator) Generate(ctx context.Context, notes string) (*Deck, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("notes are empty")
	}

	ctx = llm.WithPurpose(ctx, "card-gen")

	userMsg, err := buildGenMessage(notes, g.cfg.CardCount)
	if err != nil {
		return nil, fmt.Errorf("build generation prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: genSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DeckSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("card generation failed: %w", err)
	}

	var raw deckOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse generated deck: %w", err)
	}

	deck := &Deck{Title: strings.TrimSpace(raw.Title)}
	for _, rc := range raw.Cards {
		c := card.Card{
			Front: strings.TrimSpace(rc.Front),
			Back:  strings.TrimSpace(rc.Back),
		}
		if c.Front == "" || c.Back == "" {
			continue
		}
		deck.Cards = append(deck.Cards, c)
	}
	deck.Cards = card.Dedupe(deck.Cards)

	if len(deck.Cards) == 0 {
		return nil, fmt.Errorf("model returned no usable cards")
	}
	if deck.Title == "" {
		deck.Title = "Generated study set"
	}
	return deck, nil
}

const genSystemPrompt = `You turn study notes into flashcards for spaced review.

Instructions:
- Each card has a front (a question or prompt) and a back (the answer).
- Cover the important facts and concepts in the notes; skip filler.
- Keep fronts specific enough to have one clear answer.
- Keep backs short: the answer itself, not an essay.
- Do not invent facts that are not in the notes.`

var genUserTemplate = template.Must(template.New("cardgen").Parse(`Create about {{.Count}} flashcards from these notes:

{{.Notes}}`))

func buildGenMessage(notes string, count int) (string, error) {
	var buf bytes.Buffer
	err := genUserTemplate.Execute(&buf, struct {
		Count int
		Notes string
	}{Count: count, Notes: notes})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
