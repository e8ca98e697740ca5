//go:build ebiten

package gui

import (
	"io"
	"log"
	"testing"

	"termgol/internal/app"
	"termgol/pkg/core"
	"termgol/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyBindingsUnique(t *testing.T) {
	seen := map[ebiten.Key]bool{}
	for _, b := range keyBindings {
		if seen[b.key] {
			t.Fatalf("key %v bound twice", b.key)
		}
		seen[b.key] = true
	}
}

func TestPauseAppliesBeforeEditInSameFrame(t *testing.T) {
	ctrl := app.NewController(life.DefaultConfig(), app.Options{
		Setup:  life.Setup{Kind: life.SetupBlank},
		Alpha:  255,
		Rand:   core.NewRNG(1),
		Logger: log.New(io.Discard, "", 0),
	})
	ctrl.Resize(core.Size{W: 10, H: 10})

	down := map[ebiten.Key]bool{ebiten.KeyX: true, ebiten.KeySpace: true}
	for i := 0; i < 20; i++ {
		actions := pressedActions(func(k ebiten.Key) bool { return down[k] })
		if len(actions) != 2 || actions[0] != app.ActionTogglePause || actions[1] != app.ActionToggleCell {
			t.Fatalf("actions = %v", actions)
		}
	}
	for _, a := range pressedActions(func(k ebiten.Key) bool { return down[k] }) {
		ctrl.Handle(a)
	}
	if !ctrl.State().Paused || ctrl.World().Population() != 1 {
		t.Fatalf("paused %v population %d", ctrl.State().Paused, ctrl.World().Population())
	}
}
