package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	def := DefaultSnakeConfig()

	if cfg.Arena != def.Arena {
		t.Errorf("Arena = %+v, expected %+v", cfg.Arena, def.Arena)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Food != def.Food {
		t.Errorf("Food = %+v, expected %+v", cfg.Food, def.Food)
	}
	if cfg.Snake.InitialLength != def.Snake.InitialLength {
		t.Errorf("InitialLength = %d, expected %d", cfg.Snake.InitialLength, def.Snake.InitialLength)
	}
	if len(cfg.Snake.Spawns) != 1 || cfg.Snake.Spawns[0] != def.Snake.Spawns[0] {
		t.Errorf("Spawns = %+v, expected %+v", cfg.Snake.Spawns, def.Snake.Spawns)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	data := []byte(`
arena:
  width: 30
  height: 20
timing:
  tick_interval: 90ms
food:
  max_concurrent: 3
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Arena.Width != 30 || cfg.Arena.Height != 20 {
		t.Errorf("Arena = %+v", cfg.Arena)
	}
	if cfg.Timing.TickInterval != 90*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 90ms", cfg.Timing.TickInterval)
	}
	if cfg.Timing.FoodInterval != time.Second {
		t.Errorf("FoodInterval = %s, expected default 1s", cfg.Timing.FoodInterval)
	}
	if cfg.Food.MaxConcurrent != 3 {
		t.Errorf("MaxConcurrent = %d, expected 3", cfg.Food.MaxConcurrent)
	}
	// Spawn falls back to the arena center
	if sp := cfg.Snake.Spawns[0]; sp.X != 15 || sp.Y != 10 {
		t.Errorf("spawn = %+v, expected center (15,10)", sp)
	}
}

func TestParseSpawnDirections(t *testing.T) {
	data := []byte(`
snake:
  initial_length: 3
  spawns:
    - {x: 2, y: 2, direction: right}
    - {x: 12, y: 12, direction: left}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Snake.Spawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(cfg.Snake.Spawns))
	}
	if cfg.Snake.Spawns[0].Direction != core.DirRight || cfg.Snake.Spawns[1].Direction != core.DirLeft {
		t.Errorf("directions = %s, %s", cfg.Snake.Spawns[0].Direction, cfg.Snake.Spawns[1].Direction)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"zero width", func(c *SnakeConfig) { c.Arena.Width = 0 }},
		{"zero length", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }},
		{"no spawns", func(c *SnakeConfig) { c.Snake.Spawns = nil }},
		{"zero tick", func(c *SnakeConfig) { c.Timing.TickInterval = 0 }},
		{"zero food interval", func(c *SnakeConfig) { c.Timing.FoodInterval = 0 }},
		{"zero catch up", func(c *SnakeConfig) { c.Timing.MaxCatchUp = 0 }},
		{"negative food", func(c *SnakeConfig) { c.Food.MaxConcurrent = -1 }},
		{"spawn outside", func(c *SnakeConfig) { c.Snake.Spawns[0].X = 99 }},
		{"snake too long", func(c *SnakeConfig) { c.Snake.InitialLength = 15*15 + 1 }},
		{"overlapping spawns", func(c *SnakeConfig) {
			c.Snake.Spawns = append(c.Snake.Spawns, SpawnPoint{X: 7, Y: 8, Direction: core.DirLeft})
		}},
		{"self overlapping wrap", func(c *SnakeConfig) {
			c.Arena.Height = 3
			c.Snake.Spawns[0].Y = 1
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultSnakeConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestSpawnCellsLayBodyBehindHead(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cells := cfg.SpawnCells(0)

	expected := []core.Cell{{X: 7, Y: 7}, {X: 7, Y: 8}, {X: 7, Y: 9}, {X: 7, Y: 10}}
	if len(cells) != len(expected) {
		t.Fatalf("got %d cells, expected %d", len(cells), len(expected))
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("cell %d = %v, expected %v", i, cells[i], expected[i])
		}
	}
}

func TestSpawnCellsWrap(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Snake.Spawns[0] = SpawnPoint{X: 1, Y: 0, Direction: core.DirRight}

	cells := cfg.SpawnCells(0)
	if cells[2] != (core.Cell{X: 14, Y: 0}) {
		t.Errorf("third cell = %v, expected wrapped (14,0)", cells[2])
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: 20\n  height: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Arena.Width != 20 || cfg.Arena.Height != 12 {
		t.Errorf("Arena = %+v", cfg.Arena)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: -4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load = %v, expected ErrInvalidConfig", err)
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Timing.TickInterval = 120 * time.Millisecond

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v\n%s", err, data)
	}
	if back.Timing.TickInterval != cfg.Timing.TickInterval {
		t.Errorf("TickInterval = %s, expected %s", back.Timing.TickInterval, cfg.Timing.TickInterval)
	}
	if back.Snake.Spawns[0].Direction != cfg.Snake.Spawns[0].Direction {
		t.Errorf("Direction = %s", back.Snake.Spawns[0].Direction)
	}
}

func TestSpeedPresets(t *testing.T) {
	base := DefaultSnakeConfig().Timing.TickInterval

	for _, p := range SpeedPresets {
		cfg := DefaultSnakeConfig()
		ApplySpeedPreset(&cfg, p)
		want := time.Duration(float64(base) * p.TickScale())
		if cfg.Timing.TickInterval != want {
			t.Errorf("%s: TickInterval = %s, expected %s", p, cfg.Timing.TickInterval, want)
		}
	}

	if _, err := ParseSpeedPreset("ludicrous"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseSpeedPreset should reject unknown presets, got %v", err)
	}
	if p, err := ParseSpeedPreset(""); err != nil || p != SpeedNormal {
		t.Errorf("empty preset = %s, %v; expected normal", p, err)
	}
}
