package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"termgol/pkg/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	FPS         int
	Rules       string
	Alive       string
	Dead        string
	FadingSpeed int
	Rainbow     bool
	Alpha       int
	Setup       string
	File        string
	Soup        string
	Seed        int64
	ScreenSaver int
	LogFile     string
	Overrides   kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		FPS:         8,
		Rules:       def.Rule.String(),
		Alive:       def.Alive.Hex(),
		Dead:        def.Dead.Hex(),
		FadingSpeed: int(def.FadingSpeed),
		Alpha:       255,
		Setup:       "termgol",
		Seed:        42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second")
	fs.StringVar(&c.Rules, "rules", c.Rules, "birth/survival rules, e.g. B3/S23")
	fs.StringVar(&c.Alive, "alive", c.Alive, "color of living cells (#RRGGBB)")
	fs.StringVar(&c.Dead, "dead", c.Dead, "color of dead cells (#RRGGBB)")
	fs.IntVar(&c.FadingSpeed, "fading-speed", c.FadingSpeed, "per-tick color step of dying cells; 0 keeps them lit, negative values produce funny colors")
	fs.BoolVar(&c.Rainbow, "rainbow", c.Rainbow, "color living cells with a positional rainbow")
	fs.IntVar(&c.Alpha, "alpha", c.Alpha, "opacity of cell colors over the dead color (0-255)")
	fs.StringVar(&c.Setup, "setup", c.Setup, "initial pattern: acorn, blank, r-pentonimo, termgol or soup")
	fs.StringVar(&c.File, "file", c.File, "load the initial pattern from a text file (overrides -setup)")
	fs.StringVar(&c.Soup, "soup", c.Soup, "random soup size WxH (implies -setup soup); empty fills the screen")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.IntVar(&c.ScreenSaver, "screensaver", c.ScreenSaver, "reseed with a random soup every N generations (0 disables)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write log output to this file")
	fs.Var(&c.Overrides, "set", "world parameter override in key=value form (repeatable)")
}

// World validates the color, rule and fading options and builds the engine
// configuration. -set overrides win over the dedicated flags.
func (c *Config) World() (life.Config, error) {
	values := map[string]string{
		"rules":        c.Rules,
		"alive":        c.Alive,
		"dead":         c.Dead,
		"fading_speed": strconv.Itoa(c.FadingSpeed),
		"rainbow":      strconv.FormatBool(c.Rainbow),
	}
	for _, kv := range c.Overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return life.Config{}, fmt.Errorf("override %q: want key=value", kv)
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return life.FromMap(values)
}

// AlphaValue returns the validated -alpha option.
func (c *Config) AlphaValue() (uint8, error) {
	if c.Alpha < 0 || c.Alpha > 255 {
		return 0, fmt.Errorf("alpha %d out of range 0-255", c.Alpha)
	}
	return uint8(c.Alpha), nil
}

// SeedSetup builds the seed pattern description. readFile loads -file content.
// A -soup size selects a soup whatever -setup says. Soups without an explicit
// size are sized to the screen later.
func (c *Config) SeedSetup(readFile func(string) ([]byte, error)) (life.Setup, error) {
	if c.File != "" {
		data, err := readFile(c.File)
		if err != nil {
			return life.Setup{}, fmt.Errorf("reading pattern: %w", err)
		}
		return life.Setup{Kind: life.SetupText, Text: string(data)}, nil
	}
	kind, err := life.ParseSetupKind(c.Setup)
	if err != nil {
		return life.Setup{}, err
	}
	setup := life.Setup{Kind: kind}
	if c.Soup != "" {
		setup.Kind = life.SetupSoup
		setup.Width, setup.Height, err = parseDims(c.Soup)
		if err != nil {
			return life.Setup{}, err
		}
	}
	return setup, nil
}

// OpenLog returns the logger selected by -log. Without -log the logger writes
// to fallback. The returned close function must be called before exiting.
func (c *Config) OpenLog(fallback io.Writer) (*log.Logger, func() error, error) {
	if c.LogFile == "" {
		return log.New(fallback, "termgol: ", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return log.New(f, "termgol: ", log.LstdFlags), f.Close, nil
}

var errBadDims = errors.New("invalid soup size")

func parseDims(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w %q: want WxH", errBadDims, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("%w %q: want WxH", errBadDims, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("%w %q: want WxH", errBadDims, s)
	}
	return w, h, nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
