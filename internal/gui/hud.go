//go:build ebiten

package gui

import (
	"image/color"

	"termgol/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 14

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
}

// NewHUD constructs a HUD with the given panel width. A zero width disables it.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Draw paints the snapshot into the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, snap core.ParameterSnapshot, offsetX, height int) {
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	y := hudLineHeight
	for _, line := range snap.Lines() {
		if y > height {
			break
		}
		text.Draw(h.panel, line, basicfont.Face7x13, 8, y, color.White)
		y += hudLineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
