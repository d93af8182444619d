package learn

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/thomasmccollum2508/studylo-sub000/internal/card"
	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
	"github.com/thomasmccollum2508/studylo-sub000/internal/round"
)

// Phase is the current phase of a learn session.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseInRound
	PhaseRoundSummary
	PhaseComplete
)

// Grader judges a typed answer against a card.
type Grader interface {
	Grade(ctx context.Context, c card.Card, answer string) mastery.Outcome
}

// Saver persists the full mastery mapping for a set after each answer.
type Saver interface {
	SaveMastery(ctx context.Context, setID string, records mastery.Records) error
}

// Feedback describes the result of one submitted answer.
type Feedback struct {
	Outcome  mastery.Outcome
	Correct  bool
	Expected string
	Before   mastery.Status
	After    mastery.Status
}

// RoundSummary aggregates what changed over one round, computed by
// diffing each round card's status at round start against its status
// now.
type RoundSummary struct {
	// NewlyLearned counts cards that left New during the round.
	NewlyLearned int
	// StillLearning counts cards sitting at Learning after the round.
	StillLearning int
	// Mastered counts cards that reached Mastered during the round.
	Mastered int
}

// Session drives learn mode: it builds rounds, serves one question at a
// time, routes answers through the mastery transition, and persists
// after every answer.
type Session struct {
	id      string
	setID   string
	cards   []card.Card
	records mastery.Records
	mode    QuestionMode

	grader  Grader
	saver   Saver
	builder *round.Builder
	rng     *rand.Rand
	now     func() time.Time

	phase         Phase
	roundCards    []mastery.CardWithMastery
	answered      map[string]bool
	startStatuses map[string]mastery.Status
	current       *Question
	summary       RoundSummary
}

// NewSession creates a learn session over the given cards and persisted
// records. The source seeds all random decisions (round composition,
// question order, choice order).
func NewSession(setID string, cards []card.Card, records mastery.Records, mode QuestionMode, g Grader, s Saver, src rand.Source) *Session {
	if records == nil {
		records = make(mastery.Records)
	}
	rng := rand.New(src)
	return &Session{
		id:      uuid.NewString(),
		setID:   setID,
		cards:   cards,
		records: records,
		mode:    mode,
		grader:  g,
		saver:   s,
		builder: round.NewBuilder(src),
		rng:     rng,
		now:     time.Now,
		phase:   PhaseSetup,
	}
}

// ID returns the unique identifier of this session.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Records returns the live mastery mapping.
func (s *Session) Records() mastery.Records {
	return s.records
}

// Counts tallies every card in the set by mastery status, counting
// cards with no record yet as New.
func (s *Session) Counts() map[mastery.Status]int {
	counts := make(map[mastery.Status]int)
	for _, c := range s.workingSet() {
		counts[c.Record.Status]++
	}
	return counts
}

// Start builds the first round. With no cards left to learn the
// session completes immediately.
func (s *Session) Start() {
	s.beginRound(s.buildRound())
}

// Current returns the active question, or nil outside InRound.
func (s *Session) Current() *Question {
	return s.current
}

// Remaining returns how many round cards are still unanswered.
func (s *Session) Remaining() int {
	return len(s.roundCards) - len(s.answered)
}

// SubmitTyped grades a typed answer for the current question and
// advances the session.
func (s *Session) SubmitTyped(ctx context.Context, answer string) (Feedback, error) {
	if s.phase != PhaseInRound || s.current == nil {
		return Feedback{}, fmt.Errorf("no active question")
	}
	outcome := s.grader.Grade(ctx, s.current.Card, answer)
	return s.record(ctx, outcome)
}

// SubmitChoice grades a multiple-choice selection for the current
// question and advances the session.
func (s *Session) SubmitChoice(ctx context.Context, index int) (Feedback, error) {
	if s.phase != PhaseInRound || s.current == nil {
		return Feedback{}, fmt.Errorf("no active question")
	}
	if s.current.Kind != KindMultipleChoice {
		return Feedback{}, fmt.Errorf("current question is not multiple choice")
	}
	outcome := mastery.OutcomeIncorrect
	if index == s.current.CorrectIndex {
		outcome = mastery.OutcomeCorrect
	}
	return s.record(ctx, outcome)
}

// SubmitSkip records an explicit "I don't know" for the current
// question. It counts as a miss.
func (s *Session) SubmitSkip(ctx context.Context) (Feedback, error) {
	if s.phase != PhaseInRound || s.current == nil {
		return Feedback{}, fmt.Errorf("no active question")
	}
	return s.record(ctx, mastery.OutcomeUnknown)
}

// Summary returns the finished round's aggregate stats. Valid in
// RoundSummary and Complete.
func (s *Session) Summary() RoundSummary {
	return s.summary
}

// Continue builds a fresh round from current state, or completes the
// session when nothing remains to learn.
func (s *Session) Continue() error {
	if s.phase != PhaseRoundSummary {
		return fmt.Errorf("not at a round summary")
	}
	s.beginRound(s.buildRound())
	return nil
}

// ReviewLearning forces a round built only from Learning cards,
// skipping the usual mastered top-up. With no Learning cards right now
// it falls back to a regular round: only buildRound decides whether
// the session is complete.
func (s *Session) ReviewLearning() error {
	if s.phase != PhaseRoundSummary {
		return fmt.Errorf("not at a round summary")
	}
	cards := s.builder.BuildLearningOnly(s.workingSet())
	if len(cards) == 0 {
		cards = s.buildRound()
	}
	s.beginRound(cards)
	return nil
}

// Exit ends the session. Mastery is already persisted per answer, so
// there is nothing to flush.
func (s *Session) Exit() {
	s.phase = PhaseComplete
	s.current = nil
}

func (s *Session) workingSet() []mastery.CardWithMastery {
	return mastery.Initialize(s.cards, s.records)
}

// buildRound mixes a fresh round, or returns nothing when zero
// non-mastered cards remain — that is the session's terminal condition,
// even though the builder would still surface mastered cards for
// review.
func (s *Session) buildRound() []mastery.CardWithMastery {
	working := s.workingSet()

	remaining := 0
	for _, c := range working {
		if c.Record.Status != mastery.StatusMastered {
			remaining++
		}
	}
	if remaining == 0 {
		return nil
	}
	return s.builder.Build(working)
}

func (s *Session) beginRound(cards []mastery.CardWithMastery) {
	if len(cards) == 0 {
		s.phase = PhaseComplete
		s.current = nil
		s.roundCards = nil
		return
	}

	s.roundCards = cards
	s.answered = make(map[string]bool, len(cards))
	s.startStatuses = make(map[string]mastery.Status, len(cards))
	for _, c := range cards {
		s.startStatuses[c.ID] = c.Record.Status
	}
	s.phase = PhaseInRound
	s.nextQuestion()
}

// record applies the outcome, persists the mapping, and advances to
// the next question or the round summary.
func (s *Session) record(ctx context.Context, outcome mastery.Outcome) (Feedback, error) {
	q := s.current
	before, ok := s.records[q.CardID]
	if !ok {
		before = mastery.NewRecord()
	}

	after := mastery.Apply(before, outcome, s.now())
	s.records[q.CardID] = after

	if s.saver != nil {
		if err := s.saver.SaveMastery(ctx, s.setID, s.records); err != nil {
			return Feedback{}, fmt.Errorf("persist mastery: %w", err)
		}
	}

	s.answered[q.CardID] = true
	fb := Feedback{
		Outcome:  outcome,
		Correct:  outcome == mastery.OutcomeCorrect,
		Expected: q.Card.Back,
		Before:   before.Status,
		After:    after.Status,
	}

	s.nextQuestion()
	return fb, nil
}

// nextQuestion picks a still-unanswered round card uniformly at random,
// or moves to the round summary when none remain.
func (s *Session) nextQuestion() {
	var remaining []mastery.CardWithMastery
	for _, c := range s.roundCards {
		if !s.answered[c.ID] {
			remaining = append(remaining, c)
		}
	}

	if len(remaining) == 0 {
		s.summary = s.computeSummary()
		s.phase = PhaseRoundSummary
		s.current = nil
		return
	}

	pick := remaining[s.rng.Intn(len(remaining))]
	q := buildQuestion(pick.Card, pick.ID, s.questionKind(), s.cards, s.rng)
	s.current = &q
}

func (s *Session) questionKind() QuestionKind {
	switch s.mode {
	case ModeMultipleChoice:
		return KindMultipleChoice
	case ModeTyped:
		return KindTyped
	default:
		if s.rng.Intn(2) == 0 {
			return KindMultipleChoice
		}
		return KindTyped
	}
}

func (s *Session) computeSummary() RoundSummary {
	var sum RoundSummary
	for _, c := range s.roundCards {
		start := s.startStatuses[c.ID]
		now := s.records[c.ID].Status

		if start == mastery.StatusNew && now != mastery.StatusNew {
			sum.NewlyLearned++
		}
		if now == mastery.StatusLearning {
			sum.StillLearning++
		}
		if now == mastery.StatusMastered && start != mastery.StatusMastered {
			sum.Mastered++
		}
	}
	return sum
}
