package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"bsp-rogue/config"
	"bsp-rogue/generation"
	"bsp-rogue/systems"
	"bsp-rogue/terminal"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "bsp-rogue:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	settings, err := config.FromArgs("bsp-rogue", args, os.Stderr)
	if err != nil {
		return err
	}
	level, _ := settings.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var generator generation.MapGenerator = generation.NewDungeonGenerator(generation.WithLogger(logger))
	if settings.Seed != nil {
		generator.SetSeed(*settings.Seed)
	}
	logger.Info("generator ready", "seed", generator.Seed())

	if settings.Print {
		d, err := generator.Generate(settings.Dungeon)
		if err != nil {
			return err
		}
		fmt.Print(d.Area.String())
		return nil
	}

	switch settings.Frontend {
	case config.FrontendTerminal:
		return runTerminal(settings, generator)
	default:
		return runWindow(settings, generator, logger)
	}
}

func sessionConfig(settings config.Settings, logger *slog.Logger) systems.SessionConfig {
	return systems.SessionConfig{
		Dungeon:      settings.Dungeon,
		CanvasWidth:  settings.CanvasWidth,
		CanvasHeight: settings.CanvasHeight,
		BoxWalls:     settings.BoxWalls,
		Logger:       logger,
	}
}

func runWindow(settings config.Settings, generator generation.MapGenerator, logger *slog.Logger) error {
	game, err := NewGame(settings, generator, logger)
	if err != nil {
		return err
	}
	w, h := config.GetWindowSize(settings.CanvasWidth, settings.CanvasHeight)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("BSP Rogue")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// runTerminal plays in the terminal. Logging would garble the screen, so the
// game logs nothing while it runs.
func runTerminal(settings config.Settings, generator generation.MapGenerator) error {
	quiet := slog.New(slog.DiscardHandler)
	generator.SetLogger(quiet)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	regenerate := func() (*systems.Player, error) {
		return systems.NewSession(generator, sessionConfig(settings, quiet))
	}
	p, err := regenerate()
	if err != nil {
		return err
	}
	return terminal.New(screen, p, regenerate).Run()
}
