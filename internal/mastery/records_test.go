package mastery

import (
	"testing"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
)

func TestInitialize_JoinsExistingAndDefaults(t *testing.T) {
	cards := []card.Card{
		{Front: "Mitochondria", Back: "Powerhouse of the cell"},
		{Front: "Ribosome", Back: "Protein factory"},
	}
	knownID := card.ID(cards[0])
	records := Records{
		knownID: {Status: StatusLearning, CorrectStreak: 1},
	}

	joined := Initialize(cards, records)
	if len(joined) != 2 {
		t.Fatalf("got %d cards, want 2", len(joined))
	}
	if joined[0].ID != knownID || joined[0].Record.Status != StatusLearning {
		t.Errorf("known card not joined: %+v", joined[0])
	}
	if joined[1].Record != NewRecord() {
		t.Errorf("unknown card should default to New, got %+v", joined[1].Record)
	}
}

func TestCountByStatus(t *testing.T) {
	records := Records{
		"a": {Status: StatusMastered, CorrectStreak: 2},
		"b": {Status: StatusMastered, CorrectStreak: 3},
		"c": {Status: StatusLearning, CorrectStreak: 1},
		"d": NewRecord(),
	}
	counts := records.CountByStatus()
	if counts[StatusMastered] != 2 || counts[StatusLearning] != 1 || counts[StatusNew] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
