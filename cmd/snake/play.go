package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: snake).

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart (after the game is lost)
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  Q/Esc        - Quit

Speed presets scale the movement tick:
  easy    - 1.5x slower
  normal  - As configured
  hard    - Faster
  insane  - Much faster

Examples:
  snake play
  snake play snake_feast
  snake play --speed hard
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}

	// Surface config errors before the alt screen hides them.
	if _, err := config.Load(flagConfig); err != nil {
		return err
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	store, closeStore := openStore()
	defer closeStore()

	logger.Info("starting game", "variant", variant, "fps", cfg.TickRate, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig reads the terminal size. The game needs a real terminal.
func runtimeConfig() (core.RuntimeConfig, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return core.RuntimeConfig{}, errors.New("stdout is not a terminal; use 'snake sim' for headless runs")
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg, nil
}

// openStore opens the results database. The game still runs without it.
func openStore() (tui.ResultStore, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", flagDBPath, "err", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}
