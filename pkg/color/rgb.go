// Package color holds the fully resolved RGB model shared by the automaton
// and its renderers.
package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidHex is returned for color strings that are not #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB stores explicit 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Blend interpolates from dst to c: result = c*alpha + dst*(255-alpha), with
// alpha in 1/255 units.
func (c RGB) Blend(dst RGB, alpha uint8) RGB {
	return RGB{
		R: blendChannel(c.R, dst.R, alpha),
		G: blendChannel(c.G, dst.G, alpha),
		B: blendChannel(c.B, dst.B, alpha),
	}
}

func blendChannel(src, dst, alpha uint8) uint8 {
	a := uint32(alpha)
	return uint8((uint32(src)*a + uint32(dst)*(255-a) + 127) / 255)
}

// Fade moves every channel of c one bounded step toward target.
//
// A positive speed moves each channel by at most speed and stops exactly on the
// target. Zero leaves c unchanged. A negative speed pushes every channel away
// from the target by |speed| with 8-bit wraparound, so colors cycle instead of
// settling. A channel already on the target is pushed upward.
func (c RGB) Fade(target RGB, speed int32) RGB {
	return RGB{
		R: fadeChannel(c.R, target.R, speed),
		G: fadeChannel(c.G, target.G, speed),
		B: fadeChannel(c.B, target.B, speed),
	}
}

func fadeChannel(cur, target uint8, speed int32) uint8 {
	delta := int32(target) - int32(cur)
	switch {
	case speed == 0:
		return cur
	case speed < 0:
		if delta > 0 {
			return uint8(int32(cur) + speed)
		}
		return uint8(int32(cur) - speed)
	case delta == 0:
		return cur
	case delta > 0:
		return uint8(int32(cur) + min(delta, speed))
	default:
		return uint8(int32(cur) - min(-delta, speed))
	}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string { return c.Hex() }

// ParseHex parses a #RRGGBB color string.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
