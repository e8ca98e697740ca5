package render

import (
	"termgol/pkg/color"
	"termgol/pkg/sims/life"
)

// FillRGBA converts cell backgrounds into opaque RGBA pixels in buf. Each
// background is first blended over dead at the given alpha, the same way the
// terminal renderer composes cells.
func FillRGBA(buf []byte, cells []life.Cell, dead color.RGB, alpha uint8) {
	if len(buf) < 4*len(cells) {
		return
	}
	for i := range cells {
		c := cells[i].Color.BG.Blend(dead, alpha)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}
}
