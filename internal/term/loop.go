package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"termgol/internal/app"
	"termgol/pkg/core"
)

// Run drives c from screen events and a ticker until the user quits, ctx is
// cancelled or the screen shuts down. All world mutation happens on the
// calling goroutine; events are only read on a helper goroutine. The caller
// owns Init and Fini of screen.
func Run(ctx context.Context, screen tcell.Screen, c *app.Controller, fps int) error {
	if fps <= 0 {
		fps = 8
	}
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	var r Renderer
	w, h := screen.Size()
	c.Resize(core.Size{W: w, H: h})
	r.Draw(screen, c)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				c.Resize(core.Size{W: w, H: h})
				screen.Sync()
			case *tcell.EventKey:
				if c.Handle(KeyAction(ev)) {
					return nil
				}
			}
			r.Draw(screen, c)
		case <-ticker.C:
			c.Tick()
			r.Draw(screen, c)
		}
	}
}

// KeyAction maps a key press to a controller action.
func KeyAction(ev *tcell.EventKey) app.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.ActionQuit
	case tcell.KeyLeft:
		return app.ActionCursorLeft
	case tcell.KeyRight:
		return app.ActionCursorRight
	case tcell.KeyUp:
		return app.ActionCursorUp
	case tcell.KeyDown:
		return app.ActionCursorDown
	case tcell.KeyEnter:
		return app.ActionToggleCell
	case tcell.KeyRune:
	default:
		return app.ActionNone
	}
	switch ev.Rune() {
	case 'q':
		return app.ActionQuit
	case ' ', 'p':
		return app.ActionTogglePause
	case 'n':
		return app.ActionStep
	case 'h':
		return app.ActionCursorLeft
	case 'l':
		return app.ActionCursorRight
	case 'k':
		return app.ActionCursorUp
	case 'j':
		return app.ActionCursorDown
	case 'x':
		return app.ActionToggleCell
	case 'r':
		return app.ActionReseed
	case 's':
		return app.ActionRandomize
	case 'd':
		return app.ActionNextDebugPage
	}
	return app.ActionNone
}
