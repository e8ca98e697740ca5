package life

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRule is returned for rule strings not shaped like B3/S23.
var ErrInvalidRule = errors.New("invalid rule")

var rulePattern = regexp.MustCompile(`^B([0-8]{0,9})/S([0-8]{0,9})$`)

// NeighborSet is a set of live-neighbor counts in 0..8, stored as a bitmask.
type NeighborSet uint16

// NewNeighborSet builds a set from counts. Values above 8 are ignored.
func NewNeighborSet(counts ...uint8) NeighborSet {
	var s NeighborSet
	for _, c := range counts {
		if c <= 8 {
			s |= 1 << c
		}
	}
	return s
}

// Has reports whether n is a member.
func (s NeighborSet) Has(n int) bool {
	return n >= 0 && n <= 8 && s&(1<<n) != 0
}

// Counts lists the members in ascending order.
func (s NeighborSet) Counts() []uint8 {
	var out []uint8
	for n := uint8(0); n <= 8; n++ {
		if s&(1<<n) != 0 {
			out = append(out, n)
		}
	}
	return out
}

func (s NeighborSet) String() string {
	var b strings.Builder
	for _, n := range s.Counts() {
		b.WriteByte('0' + n)
	}
	return b.String()
}

// Rule holds the birth and survival neighbor counts of a Life-like automaton.
type Rule struct {
	Birth    NeighborSet
	Survival NeighborSet
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{Birth: NewNeighborSet(3), Survival: NewNeighborSet(2, 3)}

// Next decides the next state of a cell given its state and live-neighbor count.
func (r Rule) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survival.Has(neighbors)
	}
	return r.Birth.Has(neighbors)
}

func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

// ParseRule parses B<digits>/S<digits> notation. Repeated digits are allowed.
func ParseRule(s string) (Rule, error) {
	m := rulePattern.FindStringSubmatch(s)
	if m == nil {
		return Rule{}, fmt.Errorf("%w %q: use e.g. B3/S23 for Conway's Game of Life", ErrInvalidRule, s)
	}
	return Rule{Birth: digits(m[1]), Survival: digits(m[2])}, nil
}

func digits(s string) NeighborSet {
	var set NeighborSet
	for i := 0; i < len(s); i++ {
		set |= 1 << (s[i] - '0')
	}
	return set
}
