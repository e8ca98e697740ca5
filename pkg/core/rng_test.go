package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	FillBinary(NewRNG(7), a)
	FillBinary(NewRNG(7), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different sequences")
	}
	for _, v := range a {
		if v > 1 {
			t.Fatalf("FillBinary produced %d", v)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) must return 0")
	}
}
