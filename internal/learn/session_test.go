package learn

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

// stubGrader grades by exact match against the card back, no model.
type stubGrader struct{}

func (stubGrader) Grade(_ context.Context, c card.Card, answer string) mastery.Outcome {
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(c.Back)) {
		return mastery.OutcomeCorrect
	}
	return mastery.OutcomeIncorrect
}

// countingSaver records how many times the session persisted.
type countingSaver struct {
	saves int
	last  mastery.Records
}

func (s *countingSaver) SaveMastery(_ context.Context, _ string, records mastery.Records) error {
	s.saves++
	s.last = records
	return nil
}

func makeCards(n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = card.Card{
			Front: "question " + string(rune('a'+i)),
			Back:  "answer " + string(rune('a'+i)),
		}
	}
	return cards
}

func newTestSession(cards []card.Card, records mastery.Records, mode QuestionMode) (*Session, *countingSaver) {
	saver := &countingSaver{}
	s := NewSession("set1", cards, records, mode, stubGrader{}, saver, rand.NewSource(1))
	return s, saver
}

func TestSession_EmptySetCompletesImmediately(t *testing.T) {
	s, _ := newTestSession(nil, nil, ModeTyped)
	s.Start()

	if s.Phase() != PhaseComplete {
		t.Errorf("Phase = %v, want Complete", s.Phase())
	}
	if s.Current() != nil {
		t.Error("Current should be nil after immediate completion")
	}
}

func TestSession_NoRepeatsWithinRound(t *testing.T) {
	cards := makeCards(5)
	s, _ := newTestSession(cards, nil, ModeTyped)
	s.Start()

	if s.Phase() != PhaseInRound {
		t.Fatalf("Phase = %v, want InRound", s.Phase())
	}

	served := map[string]bool{}
	ctx := context.Background()
	for s.Phase() == PhaseInRound {
		q := s.Current()
		if served[q.CardID] {
			t.Fatalf("card %s served twice in one round", q.CardID)
		}
		served[q.CardID] = true
		if _, err := s.SubmitTyped(ctx, q.Card.Back); err != nil {
			t.Fatalf("SubmitTyped: %v", err)
		}
	}

	if len(served) != 5 {
		t.Errorf("served %d distinct cards, want 5", len(served))
	}
	if s.Phase() != PhaseRoundSummary {
		t.Errorf("Phase = %v, want RoundSummary", s.Phase())
	}
}

func TestSession_PersistsAfterEveryAnswer(t *testing.T) {
	cards := makeCards(3)
	s, saver := newTestSession(cards, nil, ModeTyped)
	s.Start()

	ctx := context.Background()
	answers := 0
	for s.Phase() == PhaseInRound {
		if _, err := s.SubmitTyped(ctx, s.Current().Card.Back); err != nil {
			t.Fatalf("SubmitTyped: %v", err)
		}
		answers++
	}

	if saver.saves != answers {
		t.Errorf("saves = %d, want %d (one per answer)", saver.saves, answers)
	}
}

func TestSession_SummaryDiffsAgainstRoundStart(t *testing.T) {
	cards := makeCards(2)
	s, _ := newTestSession(cards, nil, ModeTyped)
	s.Start()

	ctx := context.Background()
	for s.Phase() == PhaseInRound {
		if _, err := s.SubmitTyped(ctx, s.Current().Card.Back); err != nil {
			t.Fatalf("SubmitTyped: %v", err)
		}
	}

	sum := s.Summary()
	if sum.NewlyLearned != 2 {
		t.Errorf("NewlyLearned = %d, want 2", sum.NewlyLearned)
	}
	if sum.StillLearning != 2 {
		t.Errorf("StillLearning = %d, want 2", sum.StillLearning)
	}
	if sum.Mastered != 0 {
		t.Errorf("Mastered = %d, want 0 after one correct each", sum.Mastered)
	}

	// Second correct pass masters both cards.
	if err := s.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	for s.Phase() == PhaseInRound {
		if _, err := s.SubmitTyped(ctx, s.Current().Card.Back); err != nil {
			t.Fatalf("SubmitTyped: %v", err)
		}
	}

	sum = s.Summary()
	if sum.Mastered != 2 {
		t.Errorf("Mastered = %d, want 2 after second pass", sum.Mastered)
	}
	if sum.StillLearning != 0 {
		t.Errorf("StillLearning = %d, want 0", sum.StillLearning)
	}

	// Nothing left to learn.
	if err := s.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("Phase = %v, want Complete when all mastered", s.Phase())
	}
}

func TestSession_WrongAnswerDemotes(t *testing.T) {
	cards := makeCards(1)
	id := card.ID(cards[0])
	records := mastery.Records{
		id: {Status: mastery.StatusMastered, CorrectStreak: 2},
	}
	s, _ := newTestSession(cards, records, ModeTyped)
	s.Start()

	fb, err := s.SubmitTyped(context.Background(), "totally wrong")
	if err != nil {
		t.Fatalf("SubmitTyped: %v", err)
	}
	if fb.Before != mastery.StatusMastered || fb.After != mastery.StatusLearning {
		t.Errorf("transition %v -> %v, want Mastered -> Learning", fb.Before, fb.After)
	}
	if rec := s.Records()[id]; rec.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", rec.CorrectStreak)
	}
}

func TestSession_SkipCountsAsMiss(t *testing.T) {
	cards := makeCards(1)
	s, _ := newTestSession(cards, nil, ModeTyped)
	s.Start()

	fb, err := s.SubmitSkip(context.Background())
	if err != nil {
		t.Fatalf("SubmitSkip: %v", err)
	}
	if fb.Outcome != mastery.OutcomeUnknown {
		t.Errorf("Outcome = %v, want Unknown", fb.Outcome)
	}
	if fb.After != mastery.StatusLearning {
		t.Errorf("After = %v, want Learning", fb.After)
	}
}

func TestSession_SubmitChoice(t *testing.T) {
	cards := makeCards(6)
	s, _ := newTestSession(cards, nil, ModeMultipleChoice)
	s.Start()

	ctx := context.Background()
	q := s.Current()
	if q.Kind != KindMultipleChoice {
		t.Fatalf("Kind = %v, want multiple choice", q.Kind)
	}
	fb, err := s.SubmitChoice(ctx, q.CorrectIndex)
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if !fb.Correct {
		t.Error("correct index graded incorrect")
	}

	q = s.Current()
	wrong := (q.CorrectIndex + 1) % len(q.Choices)
	fb, err = s.SubmitChoice(ctx, wrong)
	if err != nil {
		t.Fatalf("SubmitChoice: %v", err)
	}
	if fb.Correct {
		t.Error("wrong index graded correct")
	}
}

func TestSession_ReviewLearningOnlyLearningCards(t *testing.T) {
	cards := makeCards(6)
	records := make(mastery.Records)
	// Two learning, two mastered, two new.
	records[card.ID(cards[0])] = mastery.Record{Status: mastery.StatusLearning, CorrectStreak: 1}
	records[card.ID(cards[1])] = mastery.Record{Status: mastery.StatusLearning, CorrectStreak: 1}
	records[card.ID(cards[2])] = mastery.Record{Status: mastery.StatusMastered, CorrectStreak: 2}
	records[card.ID(cards[3])] = mastery.Record{Status: mastery.StatusMastered, CorrectStreak: 2}

	s, _ := newTestSession(cards, records, ModeTyped)
	s.Start()

	ctx := context.Background()
	for s.Phase() == PhaseInRound {
		if _, err := s.SubmitSkip(ctx); err != nil {
			t.Fatalf("SubmitSkip: %v", err)
		}
	}

	if err := s.ReviewLearning(); err != nil {
		t.Fatalf("ReviewLearning: %v", err)
	}
	for s.Phase() == PhaseInRound {
		q := s.Current()
		if st := s.Records()[q.CardID].Status; st != mastery.StatusLearning {
			t.Errorf("review round served %v card %s", st, q.CardID)
		}
		if _, err := s.SubmitSkip(ctx); err != nil {
			t.Fatalf("SubmitSkip: %v", err)
		}
	}
}

func TestSession_ReviewLearningWithoutLearningCardsKeepsStudying(t *testing.T) {
	// A summary can be reached with zero Learning cards while New cards
	// remain, e.g. when a large set's round excluded them and every
	// served card was answered correctly. Choosing the review
	// continuation then must not end the session.
	cards := makeCards(2)
	records := mastery.Records{
		card.ID(cards[0]): {Status: mastery.StatusMastered, CorrectStreak: 2},
	}
	s, _ := newTestSession(cards, records, ModeTyped)
	s.phase = PhaseRoundSummary

	if err := s.ReviewLearning(); err != nil {
		t.Fatalf("ReviewLearning: %v", err)
	}
	if s.Phase() == PhaseComplete {
		t.Fatal("session completed while a card is still unstudied")
	}
	if s.Phase() != PhaseInRound || s.Current() == nil {
		t.Fatalf("Phase = %v, want a fresh round in progress", s.Phase())
	}
}

func TestSession_ReviewLearningAllMasteredCompletes(t *testing.T) {
	cards := makeCards(2)
	records := mastery.Records{
		card.ID(cards[0]): {Status: mastery.StatusMastered, CorrectStreak: 2},
		card.ID(cards[1]): {Status: mastery.StatusMastered, CorrectStreak: 2},
	}
	s, _ := newTestSession(cards, records, ModeTyped)
	s.phase = PhaseRoundSummary

	if err := s.ReviewLearning(); err != nil {
		t.Fatalf("ReviewLearning: %v", err)
	}
	if s.Phase() != PhaseComplete {
		t.Errorf("Phase = %v, want Complete when nothing is left to learn", s.Phase())
	}
}

func TestBuildQuestion_Choices(t *testing.T) {
	cards := makeCards(8)
	rng := rand.New(rand.NewSource(7))

	q := buildQuestion(cards[0], card.ID(cards[0]), KindMultipleChoice, cards, rng)
	if len(q.Choices) != 4 {
		t.Fatalf("len(Choices) = %d, want 4", len(q.Choices))
	}
	if q.Choices[q.CorrectIndex] != cards[0].Back {
		t.Errorf("Choices[CorrectIndex] = %q, want %q", q.Choices[q.CorrectIndex], cards[0].Back)
	}
	seen := map[string]bool{}
	for _, ch := range q.Choices {
		if seen[ch] {
			t.Errorf("duplicate choice %q", ch)
		}
		seen[ch] = true
	}
}

func TestBuildQuestion_PadsSmallSets(t *testing.T) {
	cards := makeCards(1)
	rng := rand.New(rand.NewSource(7))

	q := buildQuestion(cards[0], card.ID(cards[0]), KindMultipleChoice, cards, rng)
	if len(q.Choices) != 4 {
		t.Fatalf("len(Choices) = %d, want 4 with placeholder padding", len(q.Choices))
	}
	if q.Choices[q.CorrectIndex] != cards[0].Back {
		t.Errorf("correct answer missing from padded choices")
	}
}
