package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_SingleCard(t *testing.T) {
	input := `Q: What is the capital of France?
A: Paris`

	cards, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	if cards[0].Front != "What is the capital of France?" || cards[0].Back != "Paris" {
		t.Errorf("card = %+v", cards[0])
	}
}

func TestParse_MultilineBlocks(t *testing.T) {
	input := `Q: Name the three states
of matter commonly taught.
A: Solid,
liquid,
gas.`

	cards, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	if !strings.Contains(cards[0].Front, "of matter") {
		t.Errorf("Front = %q, multiline continuation lost", cards[0].Front)
	}
	if !strings.Contains(cards[0].Back, "liquid,") {
		t.Errorf("Back = %q, multiline continuation lost", cards[0].Back)
	}
}

func TestParse_MultipleCardsWithSeparators(t *testing.T) {
	input := `Q: one?
A: 1
---
Q: two?
A: 2

Q: three?
A: 3`

	cards, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("len(cards) = %d, want 3", len(cards))
	}
	if cards[2].Back != "3" {
		t.Errorf("cards[2].Back = %q", cards[2].Back)
	}
}

func TestParse_IgnoresSurroundingProse(t *testing.T) {
	input := `# My biology notes

Some introduction text that is not a card.

Q: What does DNA stand for?
A: Deoxyribonucleic acid

More notes down here.`

	cards, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	if strings.Contains(cards[0].Back, "More notes") {
		t.Errorf("prose after the card leaked into Back: %q", cards[0].Back)
	}
}

func TestParse_AnswerWithoutQuestionDropped(t *testing.T) {
	input := `A: orphaned answer
---
Q: real?
A: yes`

	cards, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("len(cards) = %d, want 1", len(cards))
	}
	if cards[0].Front != "real?" {
		t.Errorf("Front = %q", cards[0].Front)
	}
}

func TestLoadFile_RejectsIncompleteCard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	content := "Q: question with no answer\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected validation error for card without an answer")
	}
}

func TestLoadDir_MergesAndDeduplicates(t *testing.T) {
	dir := t.TempDir()
	deckA := "Q: shared?\nA: yes\n---\nQ: only in a?\nA: a\n"
	deckB := "Q: shared?\nA: yes\n---\nQ: only in b?\nA: b\n"
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte(deckA), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.md"), []byte(deckB), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-markdown files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("Q: no\nA: no\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cards, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(cards) != 3 {
		t.Errorf("len(cards) = %d, want 3 (duplicate collapsed, txt ignored)", len(cards))
	}
}
