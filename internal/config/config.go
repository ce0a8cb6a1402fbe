// Package config provides YAML-based configuration for the snake simulation:
// arena size, spawn policy, tick timing and food policy.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration accepted by the simulation core.
type SnakeConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Snake  SpawnConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Food   FoodConfig   `yaml:"food"`
}

// ArenaConfig defines the toroidal grid.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how snakes are created at the start of a game.
type SpawnConfig struct {
	InitialLength int          `yaml:"initial_length"` // Head included
	Spawns        []SpawnPoint `yaml:"spawns"`         // One entry per snake
}

// SpawnPoint is the head position and heading of one snake.
// Body segments are laid out behind the head.
type SpawnPoint struct {
	X         int            `yaml:"x"`
	Y         int            `yaml:"y"`
	Direction core.Direction `yaml:"direction"`
}

// Cell returns the spawn position as a grid cell.
func (p SpawnPoint) Cell() core.Cell {
	return core.Cell{X: p.X, Y: p.Y}
}

// TimingConfig defines the fixed-timestep scheduler.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"` // Logical movement tick
	FoodInterval time.Duration `yaml:"food_interval"` // Independent food timer
	MaxCatchUp   int           `yaml:"max_catch_up"`  // Max ticks run by one Advance
}

// FoodConfig defines the food placement policy.
type FoodConfig struct {
	MaxConcurrent int  `yaml:"max_concurrent"` // 0 = unlimited
	Initial       bool `yaml:"initial"`        // Spawn one food at game start
}

// Grid returns the arena as a core.Grid.
func (c SnakeConfig) Grid() core.Grid {
	return core.NewGrid(c.Arena.Width, c.Arena.Height)
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: arena must be positive, got %dx%d", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: initial_length must be at least 1, got %d", ErrInvalidConfig, c.Snake.InitialLength)
	}
	if len(c.Snake.Spawns) == 0 {
		return fmt.Errorf("%w: at least one spawn point is required", ErrInvalidConfig)
	}
	if c.Timing.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.Timing.TickInterval)
	}
	if c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("%w: food_interval must be positive, got %s", ErrInvalidConfig, c.Timing.FoodInterval)
	}
	if c.Timing.MaxCatchUp < 1 {
		return fmt.Errorf("%w: max_catch_up must be at least 1, got %d", ErrInvalidConfig, c.Timing.MaxCatchUp)
	}
	if c.Food.MaxConcurrent < 0 {
		return fmt.Errorf("%w: food.max_concurrent must not be negative", ErrInvalidConfig)
	}

	grid := c.Grid()
	if c.Snake.InitialLength*len(c.Snake.Spawns) > grid.Area() {
		return fmt.Errorf("%w: %d snakes of length %d do not fit a %dx%d arena",
			ErrInvalidConfig, len(c.Snake.Spawns), c.Snake.InitialLength, c.Arena.Width, c.Arena.Height)
	}

	// Initial chains must not overlap themselves or each other.
	taken := make(map[core.Cell]int)
	for i, sp := range c.Snake.Spawns {
		if !grid.Contains(sp.Cell()) {
			return fmt.Errorf("%w: spawn %d at %v is outside the arena", ErrInvalidConfig, i, sp.Cell())
		}
		for _, cell := range c.SpawnCells(i) {
			if owner, dup := taken[cell]; dup {
				return fmt.Errorf("%w: spawn %d overlaps spawn %d at %v", ErrInvalidConfig, i, owner, cell)
			}
			taken[cell] = i
		}
	}
	return nil
}

// SpawnCells returns the initial cells of snake i, head first.
// The body extends opposite to the starting direction and wraps at the edges.
func (c SnakeConfig) SpawnCells(i int) []core.Cell {
	sp := c.Snake.Spawns[i]
	grid := c.Grid()
	back := sp.Direction.Opposite()

	cells := make([]core.Cell, 0, c.Snake.InitialLength)
	pos := grid.Wrap(sp.Cell())
	for i, n := 0, c.Snake.InitialLength; i < n; i++ {
		cells = append(cells, pos)
		pos = grid.Step(pos, back)
	}
	return cells
}
