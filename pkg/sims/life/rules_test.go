package life

import (
	"errors"
	"slices"
	"testing"
)

func TestParseConwayRule(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	if !slices.Equal(rule.Birth.Counts(), []uint8{3}) || !slices.Equal(rule.Survival.Counts(), []uint8{2, 3}) {
		t.Fatalf("got %v", rule)
	}
	if rule != Conway {
		t.Fatalf("B3/S23 != Conway: %v", rule)
	}
}

func TestParseMaximalAndEmptyRules(t *testing.T) {
	rule, err := ParseRule("B012345678/S012345678")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	all := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}
	if !slices.Equal(rule.Birth.Counts(), all) || !slices.Equal(rule.Survival.Counts(), all) {
		t.Fatalf("got %v", rule)
	}

	empty, err := ParseRule("B/S")
	if err != nil {
		t.Fatalf("ParseRule(B/S): %v", err)
	}
	if len(empty.Birth.Counts()) != 0 || len(empty.Survival.Counts()) != 0 {
		t.Fatalf("B/S parsed to %v", empty)
	}

	dup, err := ParseRule("B33/S2")
	if err != nil {
		t.Fatalf("ParseRule(B33/S2): %v", err)
	}
	if dup.String() != "B3/S2" {
		t.Fatalf("B33/S2 = %s", dup)
	}
}

func TestParseRuleRejectsNonsense(t *testing.T) {
	for _, s := range []string{"nonsense", "B9/S23", "b3/s23", "B3S23", "B3/S23 ", "S23/B3", "B0123456780/S1"} {
		if _, err := ParseRule(s); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("ParseRule(%q) err = %v", s, err)
		}
	}
}

func TestRuleNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if got, want := Conway.Next(false, n), n == 3; got != want {
			t.Errorf("dead with %d neighbors: %v", n, got)
		}
		if got, want := Conway.Next(true, n), n == 2 || n == 3; got != want {
			t.Errorf("alive with %d neighbors: %v", n, got)
		}
	}
	if NewNeighborSet(9, 200).Has(9) || Conway.Birth.Has(-1) {
		t.Fatal("out-of-range counts must never match")
	}
}
