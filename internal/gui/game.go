//go:build ebiten

package gui

import (
	"fmt"
	"image/color"

	"termgol/internal/app"
	"termgol/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type binding struct {
	key    ebiten.Key
	action app.Action
}

// keyBindings are applied in order within a frame, so a pause pressed together
// with an edit or a step takes effect first.
var keyBindings = []binding{
	{ebiten.KeyQ, app.ActionQuit},
	{ebiten.KeyEscape, app.ActionQuit},
	{ebiten.KeySpace, app.ActionTogglePause},
	{ebiten.KeyH, app.ActionCursorLeft},
	{ebiten.KeyArrowLeft, app.ActionCursorLeft},
	{ebiten.KeyL, app.ActionCursorRight},
	{ebiten.KeyArrowRight, app.ActionCursorRight},
	{ebiten.KeyK, app.ActionCursorUp},
	{ebiten.KeyArrowUp, app.ActionCursorUp},
	{ebiten.KeyJ, app.ActionCursorDown},
	{ebiten.KeyArrowDown, app.ActionCursorDown},
	{ebiten.KeyX, app.ActionToggleCell},
	{ebiten.KeyEnter, app.ActionToggleCell},
	{ebiten.KeyN, app.ActionStep},
	{ebiten.KeyR, app.ActionReseed},
	{ebiten.KeyS, app.ActionRandomize},
	{ebiten.KeyD, app.ActionNextDebugPage},
}

// pressedActions lists the actions of the pressed keys in binding order.
func pressedActions(pressed func(ebiten.Key) bool) []app.Action {
	var out []app.Action
	for _, b := range keyBindings {
		if pressed(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *app.Controller
	painter *GridPainter
	hud     *HUD
	step    *core.FixedStep
	scale   int
}

// New constructs a Game for a world of the given size drawn at scale pixels
// per cell.
func New(ctrl *app.Controller, size core.Size, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	ctrl.Resize(size)
	return &Game{
		ctrl:    ctrl,
		painter: NewGridPainter(size.W, size.H),
		hud:     NewHUD(PanelWidth),
		step:    core.NewFixedStep(tps),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation at the fixed rate.
func (g *Game) Update() error {
	for _, a := range pressedActions(inpututil.IsKeyJustPressed) {
		if g.ctrl.Handle(a) {
			return ebiten.Termination
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ctrl.ToggleAt(core.Pt(x/g.scale, y/g.scale))
	}
	if g.step.ShouldStep() {
		g.ctrl.Tick()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.ctrl.World()
	g.painter.Blit(screen, world.Cells(), world.Config().Dead, g.ctrl.Alpha(), g.scale)

	size := world.Size()
	g.hud.Draw(screen, world.Parameters(), size.W*g.scale, size.H*g.scale)

	st := g.ctrl.State()
	if st.Paused {
		s := float64(g.scale)
		g.painter.Mark(screen, float64(st.Cursor.X)*s, float64(st.Cursor.Y)*s, s)
	}
	if st.DebugPage == 0 {
		return
	}
	info := fmt.Sprintf("%d/%d  time: %d  cursor: %v  paused: %t", st.DebugPage, app.DebugPages, st.Elapsed, st.Cursor, st.Paused)
	text.Draw(screen, info, basicfont.Face7x13, 4, 14, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.World().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
