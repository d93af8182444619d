package cardgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/thomasmccollum2508/studylo-sub000/internal/llm"
)

func TestGenerate_BuildsDeck(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Cell biology",
			"cards": [
				{"front": "What is the powerhouse of the cell?", "back": "The mitochondrion"},
				{"front": "What does DNA stand for?", "back": "Deoxyribonucleic acid"}
			]
		}`),
	})
	g := New(mock, DefaultConfig())

	deck, err := g.Generate(context.Background(), "notes about cells")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if deck.Title != "Cell biology" {
		t.Errorf("Title = %q", deck.Title)
	}
	if len(deck.Cards) != 2 {
		t.Errorf("len(Cards) = %d, want 2", len(deck.Cards))
	}
}

func TestGenerate_DropsBlankAndDuplicateCards(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "T",
			"cards": [
				{"front": "q1", "back": "a1"},
				{"front": "q1", "back": "a1"},
				{"front": "", "back": "a2"},
				{"front": "q3", "back": "  "}
			]
		}`),
	})
	g := New(mock, DefaultConfig())

	deck, err := g.Generate(context.Background(), "notes")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(deck.Cards) != 1 {
		t.Errorf("len(Cards) = %d, want 1", len(deck.Cards))
	}
}

func TestGenerate_EmptyNotesRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), "   \n"); err == nil {
		t.Fatal("expected error for empty notes")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called for empty notes")
	}
}

func TestGenerate_NoUsableCardsIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title": "T", "cards": []}`),
	})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), "notes"); err == nil {
		t.Fatal("expected error when model returns no cards")
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), "notes"); err == nil {
		t.Fatal("expected error from provider failure")
	}
}
