// snake is a terminal snake game built on a fixed-timestep simulation core.
//
// Usage:
//
//	snake                    - Start menu to pick a variant interactively
//	snake list               - List available variants
//	snake play [variant]     - Play a variant (default: snake)
//	snake scores [variant]   - Show best results
//	snake sim [variant]      - Run a headless game with the autopilot
//
// Global flags:
//
//	--fps <rate>        - Presentation frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible food placement
//	--db <path>         - Results database (default: ~/.snake/results.db)
//	--config <path>     - Custom config YAML
//	--speed <preset>    - easy, normal, hard, insane
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

const defaultVariant = "snake"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSpeed    string
	flagLogFile  string
	flagLogLevel string

	logger = log.New(io.Discard)
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake runs a grid-based snake simulation in your terminal.

The arena wraps around at the edges. Eat food to grow; running into any
segment ends the game.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  scores   - View best results
  sim      - Run a headless game with the autopilot

Running snake without a command opens the variant menu.

Examples:
  snake
  snake play
  snake play snake_feast --speed hard
  snake scores
  snake sim --ticks 2000 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Presentation frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard, insane")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup validates the shared flags and wires the logger and game settings.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return err
	}

	l, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l

	snake.SetConfigPath(flagConfig)
	snake.SetSpeedPreset(preset)
	snake.SetLogger(logger)
	tui.SetLogger(logger)
	return nil
}

// newLogger writes to path, or discards everything when path is empty.
// The terminal belongs to the game while it runs, so logs never go to stderr.
func newLogger(path, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := io.Discard
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	return log.NewWithOptions(out, log.Options{
		Prefix:          "snake",
		ReportTimestamp: true,
		Level:           lvl,
	}), nil
}

// variantArg returns the variant named in args, or the default.
func variantArg(args []string) (string, error) {
	id := defaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	if _, ok := snake.LookupVariant(id); !ok {
		return "", fmt.Errorf("unknown variant %q; run 'snake list' to see available variants", id)
	}
	return id, nil
}
