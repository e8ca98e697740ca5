package life

import (
	"fmt"
	"strconv"

	"termgol/pkg/color"
)

// Config holds the automaton parameters. Values are assumed valid; FromMap and
// the CLI layer reject malformed input before a World is built.
type Config struct {
	Rule        Rule
	Alive       color.RGB
	Dead        color.RGB
	FadingSpeed int32
	Rainbow     bool
}

// DefaultConfig returns Conway's rule with a green-on-slate palette.
func DefaultConfig() Config {
	return Config{
		Rule:        Conway,
		Alive:       color.RGB{R: 0x20, G: 0xd0, B: 0x60},
		Dead:        color.RGB{R: 0x10, G: 0x10, B: 0x18},
		FadingSpeed: 8,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys are ignored.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["rules"]; ok {
		rule, err := ParseRule(v)
		if err != nil {
			return c, err
		}
		c.Rule = rule
	}
	if v, ok := cfg["alive"]; ok {
		rgb, err := color.ParseHex(v)
		if err != nil {
			return c, fmt.Errorf("alive: %w", err)
		}
		c.Alive = rgb
	}
	if v, ok := cfg["dead"]; ok {
		rgb, err := color.ParseHex(v)
		if err != nil {
			return c, fmt.Errorf("dead: %w", err)
		}
		c.Dead = rgb
	}
	if v, ok := cfg["fading_speed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return c, fmt.Errorf("fading_speed: %w", err)
		}
		c.FadingSpeed = int32(parsed)
	}
	if v, ok := cfg["rainbow"]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("rainbow: %w", err)
		}
		c.Rainbow = parsed
	}
	return c, nil
}
