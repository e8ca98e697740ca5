package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termgol/internal/app"
	"termgol/internal/term"
	"termgol/pkg/core"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
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

	// The screen owns stdout and stderr while running.
	logger, closeLog, err := cfg.OpenLog(io.Discard)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = term.Run(ctx, screen, ctrl, cfg.FPS)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("exit: %v", err)
		return err
	}
	return nil
}
