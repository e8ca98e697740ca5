package life

import "termgol/pkg/color"

// Cell is one grid square. Only the background color carries meaning; the
// foreground stays at the default.
type Cell struct {
	Alive bool
	Color color.Pair
}

// DefaultFG is the foreground written with every cell state change.
var DefaultFG = color.Black
