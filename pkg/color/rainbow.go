package color

import (
	"math"

	"termgol/pkg/core"
)

// Terminal cells are roughly twice as tall as wide.
const (
	correctionX = 0.5
	correctionY = 1.0
)

// Rainbow maps grid positions onto a diagonal gradient. The mapping depends
// only on the position and the last size passed to Resize.
type Rainbow struct {
	stops  []RGB
	sizeX  float64
	sizeY  float64
	radius float64
}

// NewRainbow builds a gradient through stops. An empty list falls back to
// DefaultRainbow.
func NewRainbow(stops []RGB) *Rainbow {
	if len(stops) == 0 {
		stops = DefaultRainbow()
	}
	r := &Rainbow{stops: append([]RGB(nil), stops...)}
	r.Resize(core.Size{W: 1, H: 0})
	return r
}

// DefaultRainbow returns the stops used when rainbow mode is switched on.
func DefaultRainbow() []RGB {
	return []RGB{
		{255, 0, 0},
		{255, 255, 0},
		{0, 255, 0},
		{0, 255, 255},
		{0, 0, 255},
		{255, 0, 255},
	}
}

// Resize recomputes the projection axis for a grid of the given size.
func (r *Rainbow) Resize(size core.Size) {
	r.sizeX = correctionX * float64(size.W)
	r.sizeY = correctionY * float64(size.H)
	r.radius = math.Hypot(r.sizeX, r.sizeY)
}

// At returns the gradient color for p.
func (r *Rainbow) At(p core.Point) RGB {
	if len(r.stops) == 1 || r.radius == 0 {
		return r.stops[0]
	}
	px := correctionX * float64(p.X)
	py := correctionY * float64(p.Y)
	t := (px*r.sizeX + py*r.sizeY) / (r.radius * r.radius)
	t = math.Max(0, math.Min(1, t))

	segments := float64(len(r.stops) - 1)
	i := int(t * segments)
	if i >= len(r.stops)-1 {
		i = len(r.stops) - 2
	}
	a := t*segments - float64(i)
	c1, c2 := r.stops[i], r.stops[i+1]
	return RGB{
		R: lerp(c1.R, c2.R, a),
		G: lerp(c1.G, c2.G, a),
		B: lerp(c1.B, c2.B, a),
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8((1-t)*float64(a) + t*float64(b) + 0.5)
}
