// Package round selects the subset and order of cards served in one
// pass of active-recall practice.
package round

import (
	"math/rand"

	"github.com/thomasmccollum2508/studylo-sub000/internal/mastery"
)

// Size is the maximum number of cards in a round.
const Size = 8

// MasteredShare caps how much of the mastered pile may be pulled into a
// single round when topping up: mastered cards get resurfaced
// occasionally (guards against forgetting) without dominating practice
// time.
const MasteredShare = 0.2

// Builder builds rounds from the current working set. The random source
// is injectable so tests are deterministic.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a Builder seeded from src. A nil src falls back to
// the global source.
func NewBuilder(src rand.Source) *Builder {
	if src == nil {
		return &Builder{rng: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &Builder{rng: rand.New(src)}
}

// Build selects up to Size cards for one round. New and Learning cards
// form the pool; when the pool runs short, a bounded random sample of
// Mastered cards tops it up. The combined pool is shuffled uniformly.
//
// An empty result means there is nothing to study — a terminal state
// for the caller, not an error.
func (b *Builder) Build(cards []mastery.CardWithMastery) []mastery.CardWithMastery {
	var pool, mastered []mastery.CardWithMastery
	for _, c := range cards {
		if c.Record.Status == mastery.StatusMastered {
			mastered = append(mastered, c)
		} else {
			pool = append(pool, c)
		}
	}

	if len(pool) < Size && len(mastered) > 0 {
		pool = append(pool, b.sampleMastered(mastered, Size-len(pool))...)
	}

	b.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > Size {
		pool = pool[:Size]
	}
	return pool
}

// BuildLearningOnly builds a round from Learning cards only, skipping
// the mastered top-up. Used for the "review learning cards"
// continuation between rounds.
func (b *Builder) BuildLearningOnly(cards []mastery.CardWithMastery) []mastery.CardWithMastery {
	var pool []mastery.CardWithMastery
	for _, c := range cards {
		if c.Record.Status == mastery.StatusLearning {
			pool = append(pool, c)
		}
	}

	b.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > Size {
		pool = pool[:Size]
	}
	return pool
}

// sampleMastered draws a random sample of mastered cards, never more
// than MasteredShare of the pile (but at least one) and never more than
// the round has room for.
func (b *Builder) sampleMastered(mastered []mastery.CardWithMastery, room int) []mastery.CardWithMastery {
	limit := int(float64(len(mastered)) * MasteredShare)
	if limit < 1 {
		limit = 1
	}
	n := room
	if n > limit {
		n = limit
	}
	if n > len(mastered) {
		n = len(mastered)
	}

	idx := b.rng.Perm(len(mastered))[:n]
	sample := make([]mastery.CardWithMastery, 0, n)
	for _, i := range idx {
		sample = append(sample, mastered[i])
	}
	return sample
}
