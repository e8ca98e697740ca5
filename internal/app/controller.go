package app

import (
	"log"

	"termgol/pkg/core"
	"termgol/pkg/sims/life"
)

// Action is an input command, decoupled from any terminal or window library.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionStep
	ActionCursorLeft
	ActionCursorRight
	ActionCursorUp
	ActionCursorDown
	ActionToggleCell
	ActionReseed
	ActionRandomize
	ActionNextDebugPage
)

// Options configures a Controller beyond the world itself.
type Options struct {
	// Setup is re-resolved on every reseed, so soups differ each time.
	Setup life.Setup
	// ScreenSaver reseeds with a screen-sized soup every N generations and
	// whenever the population dies out. Zero disables it.
	ScreenSaver int
	// Alpha is the opacity of cell colors over the dead color.
	Alpha  uint8
	Rand   core.Rand
	Logger *log.Logger
}

// Controller owns the world and the session state and is the single writer of
// both. Drivers translate their events into Actions, Tick and Resize calls.
type Controller struct {
	world    *life.World
	state    State
	opts     Options
	stepOnce bool
	sized    bool
}

// NewController builds a world from cfg seeded by opts.Setup. The world stays
// 0x0 until the first Resize.
func NewController(cfg life.Config, opts Options) *Controller {
	if opts.Rand == nil {
		opts.Rand = core.NewRNG(1)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	c := &Controller{opts: opts}
	c.world = life.New(cfg, c.resolve(opts.Setup, core.Size{}))
	return c
}

// World exposes the simulated world for rendering.
func (c *Controller) World() *life.World { return c.world }

// State exposes the session state for rendering.
func (c *Controller) State() State { return c.state }

// Alpha returns the configured cell opacity.
func (c *Controller) Alpha() uint8 { return c.opts.Alpha }

// Resize resizes the world to the new screen size and reseeds it.
func (c *Controller) Resize(size core.Size) {
	size = size.Clamp()
	if fillsScreen(c.opts.Setup) {
		c.world.Reseed(c.resolve(c.opts.Setup, size))
	}
	c.world.Resize(size)
	c.state.Resize(size, !c.sized)
	c.sized = true
	c.opts.Logger.Printf("resize %v, population %d", size, c.world.Population())
}

// Handle applies an action. It reports whether the driver should quit.
func (c *Controller) Handle(a Action) bool {
	switch a {
	case ActionQuit:
		c.opts.Logger.Printf("quit after %d ticks", c.state.Elapsed)
		return true
	case ActionTogglePause:
		c.state.Paused = !c.state.Paused
	case ActionStep:
		c.stepOnce = true
	case ActionCursorLeft:
		c.state.MoveCursor(core.Pt(-1, 0))
	case ActionCursorRight:
		c.state.MoveCursor(core.Pt(1, 0))
	case ActionCursorUp:
		c.state.MoveCursor(core.Pt(0, -1))
	case ActionCursorDown:
		c.state.MoveCursor(core.Pt(0, 1))
	case ActionToggleCell:
		c.ToggleAt(c.state.Cursor)
	case ActionReseed:
		c.reseed(c.opts.Setup)
	case ActionRandomize:
		c.reseed(life.Setup{Kind: life.SetupSoup})
	case ActionNextDebugPage:
		c.state.NextDebugPage()
	}
	return false
}

// ToggleAt flips the cell at p. Edits are only accepted while paused.
func (c *Controller) ToggleAt(p core.Point) {
	if !c.state.Paused {
		return
	}
	c.world.ToggleAt(p)
}

// Tick is called once per timer tick. The world advances unless paused, in
// which case a pending single step is consumed.
func (c *Controller) Tick() {
	c.state.Elapsed++
	if c.state.Paused && !c.stepOnce {
		return
	}
	c.stepOnce = false
	c.world.Update()

	if n := c.opts.ScreenSaver; n > 0 {
		if c.world.Generation() >= uint64(n) || c.world.Population() == 0 {
			c.reseed(life.Setup{Kind: life.SetupSoup})
		}
	}
}

func (c *Controller) reseed(setup life.Setup) {
	c.world.Reseed(c.resolve(setup, c.world.Size()))
	c.opts.Logger.Printf("reseed %v, population %d", setup.Kind, c.world.Population())
}

// resolve turns a setup into an image; soups without a size fill the screen.
func (c *Controller) resolve(setup life.Setup, screen core.Size) life.CellImage {
	if fillsScreen(setup) {
		setup.Width, setup.Height = screen.W, screen.H
	}
	return setup.Image(c.opts.Rand)
}

func fillsScreen(setup life.Setup) bool {
	return setup.Kind == life.SetupSoup && setup.Width == 0 && setup.Height == 0
}
