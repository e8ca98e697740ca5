//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"termgol/internal/app"
	"termgol/internal/gui"
	"termgol/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	width := flag.Int("width", 160, "grid width in cells")
	height := flag.Int("height", 100, "grid height in cells")
	scale := flag.Int("scale", 6, "pixels per cell")
	flag.Parse()

	size := core.Size{W: *width, H: *height}.Clamp()
	if err := run(cfg, size, *scale); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, size core.Size, scale int) error {
	worldCfg, err := cfg.World()
	if err != nil {
		return err
	}
	alpha, err := cfg.AlphaValue()
	if err != nil {
		return err
	}
	setup, err := cfg.SeedSetup(os.ReadFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := cfg.OpenLog(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl := app.NewController(worldCfg, app.Options{
		Setup:       setup,
		ScreenSaver: cfg.ScreenSaver,
		Alpha:       alpha,
		Rand:        core.NewRNG(cfg.Seed),
		Logger:      logger,
	})
	logger.Printf("start: rules %v, setup %v, fps %d", worldCfg.Rule, setup.Kind, cfg.FPS)
	game := gui.New(ctrl, size, scale, cfg.FPS)

	ebiten.SetWindowTitle("termgol " + worldCfg.Rule.String())
	ebiten.SetWindowSize(size.W*scale+gui.PanelWidth, size.H*scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
