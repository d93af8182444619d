package card

import "testing"

func TestID_StableAcrossCalls(t *testing.T) {
	c := Card{Front: "Mitochondria", Back: "Powerhouse of the cell"}
	if ID(c) != ID(c) {
		t.Fatal("ID is not deterministic")
	}
}

func TestID_IgnoresCaseAndWhitespace(t *testing.T) {
	a := Card{Front: "  Mitochondria ", Back: "Powerhouse of the cell"}
	b := Card{Front: "mitochondria", Back: "POWERHOUSE OF THE CELL\r\n"}
	if ID(a) != ID(b) {
		t.Errorf("expected normalized cards to share an ID: %s vs %s", ID(a), ID(b))
	}
}

func TestID_DistinguishesSides(t *testing.T) {
	// The newline join prevents "ab"+"c" from colliding with "a"+"bc".
	a := Card{Front: "ab", Back: "c"}
	b := Card{Front: "a", Back: "bc"}
	if ID(a) == ID(b) {
		t.Error("cards with different side splits must not collide")
	}
}

func TestID_IdenticalContentShares(t *testing.T) {
	// Duplicate front/back pairs intentionally share one identity.
	a := Card{Front: "term", Back: "definition"}
	b := Card{Front: "term", Back: "definition"}
	if ID(a) != ID(b) {
		t.Error("identical cards must share an ID")
	}
}

func TestDedupe(t *testing.T) {
	cards := []Card{
		{Front: "a", Back: "1"},
		{Front: "A ", Back: "1"}, // same identity after normalization
		{Front: "b", Back: "2"},
	}
	out := Dedupe(cards)
	if len(out) != 2 {
		t.Fatalf("Dedupe returned %d cards, want 2", len(out))
	}
	if out[0].Front != "a" || out[1].Front != "b" {
		t.Errorf("Dedupe broke ordering: %+v", out)
	}
}
