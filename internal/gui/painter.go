//go:build ebiten

package gui

import (
	"image/color"

	"termgol/internal/render"
	rgb "termgol/pkg/color"
	"termgol/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from the world's cells.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	pixel *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []life.Cell, dead rgb.RGB, alpha uint8, scale int) {
	if len(cells) != gp.w*gp.h || len(cells) == 0 {
		return
	}
	render.FillRGBA(gp.buf, cells, dead, alpha)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Mark draws a white square of side s at (x, y).
func (gp *GridPainter) Mark(dst *ebiten.Image, x, y, s float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.pixel, op)
}
