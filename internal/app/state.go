package app

import "termgol/pkg/core"

// DebugPages is the number of debug overlay pages; page 0 hides the overlay.
const DebugPages = 2

// State is the interactive session state around the world.
type State struct {
	Paused    bool
	Cursor    core.Point
	Elapsed   uint64
	DebugPage int

	bounds core.Size
}

// Resize clamps the cursor to a new screen size and centers it the first time.
func (s *State) Resize(size core.Size, center bool) {
	s.bounds = size
	if center {
		s.Cursor = size.Center()
	}
	s.clamp()
}

// MoveCursor shifts the cursor by d, stopping at the screen edges.
func (s *State) MoveCursor(d core.Point) {
	s.Cursor = s.Cursor.Add(d)
	s.clamp()
}

func (s *State) clamp() {
	s.Cursor.X = min(max(s.Cursor.X, 0), max(s.bounds.W-1, 0))
	s.Cursor.Y = min(max(s.Cursor.Y, 0), max(s.bounds.H-1, 0))
}

// NextDebugPage cycles through 0..DebugPages.
func (s *State) NextDebugPage() {
	s.DebugPage++
	if s.DebugPage > DebugPages {
		s.DebugPage = 0
	}
}
