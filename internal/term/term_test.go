package term

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"termgol/internal/app"
	"termgol/pkg/color"
	"termgol/pkg/core"
	"termgol/pkg/sims/life"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func newController(setup life.Setup) *app.Controller {
	return app.NewController(life.DefaultConfig(), app.Options{
		Setup:  setup,
		Alpha:  255,
		Rand:   core.NewRNG(1),
		Logger: log.New(io.Discard, "", 0),
	})
}

func rgb(c color.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func bgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, st, _ := s.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func TestDrawPaintsCellBackgrounds(t *testing.T) {
	screen := newScreen(t, 40, 20)
	c := newController(life.Setup{Kind: life.SetupRPentonimo})
	c.Resize(core.Size{W: 40, H: 20})

	var r Renderer
	r.Draw(screen, c)

	cfg := c.World().Config()
	if got := bgAt(screen, 20, 10); got != rgb(cfg.Alive) {
		t.Fatalf("live cell bg = %v, want %v", got, rgb(cfg.Alive))
	}
	if got := bgAt(screen, 0, 0); got != rgb(cfg.Dead) {
		t.Fatalf("dead cell bg = %v, want %v", got, rgb(cfg.Dead))
	}
}

func TestDrawBlendsWithAlpha(t *testing.T) {
	screen := newScreen(t, 10, 10)
	c := app.NewController(life.DefaultConfig(), app.Options{
		Setup:  life.Setup{Kind: life.SetupRPentonimo},
		Alpha:  0,
		Logger: log.New(io.Discard, "", 0),
	})
	c.Resize(core.Size{W: 10, H: 10})

	var r Renderer
	r.Draw(screen, c)
	if got, want := bgAt(screen, 5, 5), rgb(c.World().Config().Dead); got != want {
		t.Fatalf("alpha 0 bg = %v, want dead %v", got, want)
	}
}

func TestDebugTextKeepsCellBackground(t *testing.T) {
	screen := newScreen(t, 40, 20)
	c := newController(life.Setup{Kind: life.SetupBlank})
	c.Resize(core.Size{W: 40, H: 20})
	c.Handle(app.ActionNextDebugPage)

	var r Renderer
	r.Draw(screen, c)

	ch, _, st, _ := screen.GetContent(0, 0)
	if ch != '1' {
		t.Fatalf("debug header starts with %q", ch)
	}
	fg, bg, _ := st.Decompose()
	if fg != rgb(color.White) || bg != rgb(c.World().Config().Dead) {
		t.Fatalf("debug text fg %v bg %v", fg, bg)
	}

	c.Handle(app.ActionNextDebugPage)
	r.Draw(screen, c)
	if ch, _, _, _ := screen.GetContent(0, 0); ch != '2' {
		t.Fatalf("second page starts with %q", ch)
	}
}

func TestCursorShownWhilePaused(t *testing.T) {
	screen := newScreen(t, 12, 6)
	c := newController(life.Setup{Kind: life.SetupBlank})
	c.Resize(core.Size{W: 12, H: 6})

	var r Renderer
	r.Draw(screen, c)
	if got := bgAt(screen, 6, 3); got == rgb(color.White) {
		t.Fatal("cursor drawn while running")
	}
	c.Handle(app.ActionTogglePause)
	r.Draw(screen, c)
	if got := bgAt(screen, 6, 3); got != rgb(color.White) {
		t.Fatalf("cursor bg = %v", got)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t, 30, 12)
	c := newController(life.Setup{Kind: life.SetupAcorn})

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), screen, c, 50) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if !c.State().Paused {
		t.Fatal("space did not pause")
	}
	if c.World().Size() != (core.Size{W: 30, H: 12}) {
		t.Fatalf("world size = %v", c.World().Size())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 16, 8)
	c := newController(life.Setup{Kind: life.SetupRPentonimo})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := Run(ctx, screen, c, 100); err != context.DeadlineExceeded {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
	if c.State().Elapsed == 0 {
		t.Fatal("ticker never fired")
	}
}

func TestKeyAction(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		ch   rune
		want app.Action
	}{
		{tcell.KeyEscape, 0, app.ActionQuit},
		{tcell.KeyCtrlC, 0, app.ActionQuit},
		{tcell.KeyRune, 'q', app.ActionQuit},
		{tcell.KeyRune, ' ', app.ActionTogglePause},
		{tcell.KeyRune, 'h', app.ActionCursorLeft},
		{tcell.KeyRune, 'j', app.ActionCursorDown},
		{tcell.KeyRune, 'k', app.ActionCursorUp},
		{tcell.KeyRune, 'l', app.ActionCursorRight},
		{tcell.KeyUp, 0, app.ActionCursorUp},
		{tcell.KeyEnter, 0, app.ActionToggleCell},
		{tcell.KeyRune, 'd', app.ActionNextDebugPage},
		{tcell.KeyRune, 'z', app.ActionNone},
		{tcell.KeyF1, 0, app.ActionNone},
	}
	for _, c := range cases {
		ev := tcell.NewEventKey(c.key, c.ch, tcell.ModNone)
		if got := KeyAction(ev); got != c.want {
			t.Errorf("key %v rune %q = %v, want %v", c.key, c.ch, got, c.want)
		}
	}
}
