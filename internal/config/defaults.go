package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration: a 15x15 arena,
// a four-segment snake heading up from the center, a 150ms tick and one food
// spawned per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  15,
			Height: 15,
		},
		Snake: SpawnConfig{
			InitialLength: 4,
			Spawns: []SpawnPoint{
				{X: 7, Y: 7, Direction: core.DirUp},
			},
		},
		Timing: TimingConfig{
			TickInterval: 150 * time.Millisecond,
			FoodInterval: time.Second,
			MaxCatchUp:   5,
		},
		Food: FoodConfig{
			MaxConcurrent: 1,
			Initial:       true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
