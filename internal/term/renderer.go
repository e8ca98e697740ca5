// Package term drives the simulation in a terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"termgol/internal/app"
	"termgol/pkg/color"
	"termgol/pkg/core"
)

var (
	textOverlay   = color.Overlay{FG: color.Use(color.White)}
	cursorOverlay = color.Overlay{FG: color.Use(color.White), BG: color.Use(color.White)}
)

// Renderer draws the world, the cursor and the debug overlay onto a screen.
type Renderer struct {
	frame []color.Pair
	runes []rune
	size  core.Size
}

// Draw renders a full frame and shows it.
func (r *Renderer) Draw(screen tcell.Screen, c *app.Controller) {
	w, h := screen.Size()
	r.reset(core.Size{W: w, H: h})
	r.drawWorld(c)
	st := c.State()
	if st.Paused {
		r.paint(st.Cursor, ' ', cursorOverlay)
	}
	r.drawDebugInfo(c)

	for i, pair := range r.frame {
		p := r.size.PointAt(i)
		screen.SetContent(p.X, p.Y, r.runes[i], nil, style(pair))
	}
	screen.Show()
}

func (r *Renderer) reset(size core.Size) {
	r.size = size.Clamp()
	n := r.size.Len()
	if cap(r.frame) < n {
		r.frame = make([]color.Pair, n)
		r.runes = make([]rune, n)
	}
	r.frame = r.frame[:n]
	r.runes = r.runes[:n]
	for i := range r.frame {
		r.frame[i] = color.Pair{}
		r.runes[i] = ' '
	}
}

func (r *Renderer) drawWorld(c *app.Controller) {
	world := c.World()
	ws := world.Size()
	dead := world.Config().Dead
	alpha := c.Alpha()
	cells := world.Cells()
	for i := range cells {
		p := ws.PointAt(i)
		if !r.size.Contains(p) {
			continue
		}
		pair := cells[i].Color
		pair.BG = pair.BG.Blend(dead, alpha)
		r.frame[r.size.Index(p)] = pair
	}
}

// paint applies o at p on top of whatever is already in the frame.
func (r *Renderer) paint(p core.Point, ch rune, o color.Overlay) {
	if !r.size.Contains(p) {
		return
	}
	i := r.size.Index(p)
	r.frame[i] = o.Over(r.frame[i])
	r.runes[i] = ch
}

func (r *Renderer) text(p core.Point, s string) {
	for _, ch := range s {
		r.paint(p, ch, textOverlay)
		p.X++
	}
}

func (r *Renderer) drawDebugInfo(c *app.Controller) {
	st := c.State()
	var lines []string
	switch st.DebugPage {
	case 0:
		return
	case 1:
		world := c.World()
		lines = []string{
			fmt.Sprintf("%d/%d General", st.DebugPage, app.DebugPages),
			fmt.Sprintf("cols: %d, rows: %d, time: %d", world.Size().W, world.Size().H, st.Elapsed),
			fmt.Sprintf("cursor_x: %d, cursor_y: %d, paused: %t", st.Cursor.X, st.Cursor.Y, st.Paused),
		}
	default:
		lines = append([]string{fmt.Sprintf("%d/%d World", st.DebugPage, app.DebugPages)}, c.World().Parameters().Lines()...)
	}
	for y, line := range lines {
		r.text(core.Pt(0, y), line)
	}
}

func style(p color.Pair) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(p.FG.R), int32(p.FG.G), int32(p.FG.B))).
		Background(tcell.NewRGBColor(int32(p.BG.R), int32(p.BG.G), int32(p.BG.B)))
}
