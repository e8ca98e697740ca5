package life

import (
	"termgol/pkg/color"
	"termgol/pkg/core"
)

// World is a Life-like automaton on a fixed-size torus. Dying cells fade
// toward the dead color instead of switching off at once.
//
// A World is not safe for concurrent use. Readers must only look at Cells
// between calls to Update, Resize, Reseed and the cell mutators.
type World struct {
	cfg     Config
	size    core.Size
	cells   []Cell
	next    []bool
	image   CellImage
	rainbow *color.Rainbow

	generation uint64
}

// New returns an empty 0x0 world that will seed image on every Resize.
func New(cfg Config, image CellImage) *World {
	w := &World{cfg: cfg, image: image}
	if cfg.Rainbow {
		w.rainbow = color.NewRainbow(nil)
	}
	return w
}

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.size }

// Cells exposes the current grid in row-major order.
func (w *World) Cells() []Cell { return w.cells }

// Config returns the parameters the world was built with.
func (w *World) Config() Config { return w.cfg }

// Image returns the seed pattern applied on resize and reseed.
func (w *World) Image() CellImage { return w.image }

// Generation counts Update calls since the last resize or reseed.
func (w *World) Generation() uint64 { return w.generation }

// Index returns the slice index of p. p must lie inside the grid.
func (w *World) Index(p core.Point) int { return w.size.Index(p) }

// At returns the cell at p, or false when p is outside the grid.
func (w *World) At(p core.Point) (Cell, bool) {
	if !w.size.Contains(p) {
		return Cell{}, false
	}
	return w.cells[w.size.Index(p)], true
}

// Population counts living cells.
func (w *World) Population() int {
	n := 0
	for i := range w.cells {
		if w.cells[i].Alive {
			n++
		}
	}
	return n
}

// Resize replaces the grid with size.W*size.H dead cells and seeds the
// configured image around the new center. Negative dimensions count as zero.
func (w *World) Resize(size core.Size) {
	w.size = size.Clamp()
	n := w.size.Len()
	if cap(w.cells) >= n && cap(w.next) >= n {
		w.cells = w.cells[:n]
		w.next = w.next[:n]
	} else {
		w.cells = make([]Cell, n)
		w.next = make([]bool, n)
	}
	if w.rainbow != nil {
		w.rainbow.Resize(w.size)
	}
	w.seed()
}

// Reseed swaps the seed image and repopulates the current grid.
func (w *World) Reseed(image CellImage) {
	w.image = image
	w.seed()
}

func (w *World) seed() {
	for i := range w.cells {
		w.SetDead(i)
	}
	w.generation = 0
	if w.size.Empty() {
		return
	}
	// Points outside the grid are dropped, not wrapped.
	origin := w.size.Center().Sub(w.image.Size.Half())
	for _, p := range w.image.Points {
		abs := origin.Add(p)
		if w.size.Contains(abs) {
			w.SetAlive(w.size.Index(abs))
		}
	}
}

// Update advances the automaton by one generation.
func (w *World) Update() {
	if w.size.Empty() {
		return
	}
	width, height := w.size.W, w.size.H
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Pt(x, y)
			idx := y*width + x
			w.next[idx] = w.cfg.Rule.Next(w.cells[idx].Alive, w.neighbors(p))
		}
	}
	for i, alive := range w.next {
		if alive {
			w.SetAlive(i)
		} else {
			w.SetDeadFading(i)
		}
	}
	w.generation++
}

func (w *World) neighbors(p core.Point) int {
	count := 0
	for _, off := range core.MooreOffsets {
		if w.cells[w.size.Index(w.size.Wrap(p.Add(off)))].Alive {
			count++
		}
	}
	return count
}

// LiveColor returns the background a living cell at index i is drawn with.
func (w *World) LiveColor(i int) color.RGB {
	if w.rainbow != nil {
		return w.rainbow.At(w.size.PointAt(i))
	}
	return w.cfg.Alive
}

// Rainbow returns the positional gradient, or nil when rainbow mode is off.
func (w *World) Rainbow() *color.Rainbow { return w.rainbow }

// SetAlive marks cell i alive with its live color.
func (w *World) SetAlive(i int) {
	w.cells[i] = Cell{Alive: true, Color: color.Pair{FG: DefaultFG, BG: w.LiveColor(i)}}
}

// SetDead marks cell i dead and snaps it to the dead color.
func (w *World) SetDead(i int) {
	w.cells[i] = Cell{Color: color.Pair{FG: DefaultFG, BG: w.cfg.Dead}}
}

// SetDeadFading marks cell i dead and moves its background one fade step
// toward the dead color.
func (w *World) SetDeadFading(i int) {
	c := &w.cells[i]
	c.Alive = false
	c.Color.FG = DefaultFG
	c.Color.BG = c.Color.BG.Fade(w.cfg.Dead, w.cfg.FadingSpeed)
}

// Toggle flips cell i between alive and dead.
func (w *World) Toggle(i int) {
	if i < 0 || i >= len(w.cells) {
		return
	}
	if w.cells[i].Alive {
		w.SetDead(i)
		return
	}
	w.SetAlive(i)
}

// ToggleAt flips the cell at p. Points outside the grid are ignored.
func (w *World) ToggleAt(p core.Point) {
	if !w.size.Contains(p) {
		return
	}
	w.Toggle(w.size.Index(p))
}
