// Package card defines the flashcard content unit and its stable
// content-derived identity.
package card

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Card is an immutable front/back flashcard. Cards are never mutated
// inside a session; regenerating a set produces a new slice of Cards.
type Card struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

// Normalize returns the canonical form of the card's content: each side
// lowercased, trimmed, with line endings normalized, joined by a newline
// so the two sides can never run together.
func Normalize(c Card) string {
	part := func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimSpace(s)
		return strings.ReplaceAll(s, "\r\n", "\n")
	}
	return part(c.Front) + "\n" + part(c.Back)
}

// ID derives the card's stable identifier: the SHA-256 of its normalized
// content as a hex string. Two cards with identical front and back text
// resolve to the same ID, which deduplicates mastery tracking across
// regenerated sets that reproduce the same content.
func ID(c Card) string {
	sum := sha256.Sum256([]byte(Normalize(c)))
	return fmt.Sprintf("%x", sum)
}

// Dedupe returns cards with duplicate identities removed, preserving
// first-occurrence order.
func Dedupe(cards []Card) []Card {
	seen := make(map[string]bool, len(cards))
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		id := ID(c)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, c)
	}
	return out
}
