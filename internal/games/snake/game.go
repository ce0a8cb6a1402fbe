package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant is a named preset registered with the platform.
type Variant struct {
	ID          string
	Title       string
	Description string
	// Tweak adjusts the loaded configuration. Nil keeps it as loaded.
	Tweak func(cfg *config.SnakeConfig)
}

// Variants lists the built-in presets.
var Variants = []Variant{
	{
		ID:          "snake",
		Title:       "Snake",
		Description: "Classic toroidal arena, one food at a time",
	},
	{
		ID:          "snake_feast",
		Title:       "Snake (Feast)",
		Description: "Double-width arena with up to three foods on the board",
		Tweak: func(cfg *config.SnakeConfig) {
			cfg.Arena.Width *= 2
			cfg.Food.MaxConcurrent = 3
			cfg.Timing.FoodInterval = cfg.Timing.FoodInterval * 3 / 5
			if len(cfg.Snake.Spawns) == 1 {
				cfg.Snake.Spawns[0].X = cfg.Arena.Width / 2
			}
		},
	},
}

// Package-level settings applied by Reset, set by the CLI before the game starts.
var (
	configPath  string
	speedPreset = config.SpeedNormal
	logger      = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path. Empty uses the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the speed preset applied on top of the config.
func SetSpeedPreset(p config.SpeedPreset) {
	speedPreset = p
}

// SetLogger sets the logger handed to every new world.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// LookupVariant returns the built-in variant with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Game adapts the simulation to the platform's registry.Game contract.
type Game struct {
	variant Variant
	world   *World
	rng     *rand.Rand
	frame   time.Duration // Simulated time covered by one Step
	frames  uint64

	screenW int
	screenH int
	err     error // Config or world construction failure
}

// New creates a game for the given variant. Call Reset before Step.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return g.variant.Description
}

// Reset discards the current world and builds a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.frames = 0
	g.world = nil
	g.err = nil

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)

	sc, err := g.loadConfig()
	if err != nil {
		g.err = err
		logger.Error("cannot load config", "variant", g.variant.ID, "err", err)
		return
	}

	world, err := NewWorld(sc, WithSeed(g.rng.Int63()), WithLogger(logger.With("variant", g.variant.ID)))
	if err != nil {
		g.err = err
		logger.Error("cannot build world", "variant", g.variant.ID, "err", err)
		return
	}
	g.world = world
}

func (g *Game) loadConfig() (config.SnakeConfig, error) {
	sc, err := config.Load(configPath)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySpeedPreset(&sc, speedPreset)
	if g.variant.Tweak != nil {
		g.variant.Tweak(&sc)
	}
	return sc, sc.Validate()
}

// Step applies one frame of input and advances the simulation by one frame of time.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frames++
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Restart is a full reconstruction and only available once lost.
	if input.Has(core.ActionRestart) && g.world.Phase() == PhaseLost {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.frame),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.world.TogglePause()
	}
	if dir, ok := input.Direction(); ok {
		//nolint:errcheck // snake 0 always exists
		g.world.Press(0, dir)
	}

	report := g.world.Advance(g.frame)
	return core.StepResult{State: g.State(), Ticks: len(report.Ticks)}
}

// Resize records new screen dimensions without resetting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// World returns the running simulation, or nil if Reset failed.
func (g *Game) World() *World {
	return g.world
}

// Err returns the error that prevented the last Reset from building a world.
func (g *Game) Err() error {
	return g.err
}

// Snapshot returns a copy of the world state.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{Phase: PhaseLost}
	}
	return g.world.Snapshot()
}

// State returns the summary for the local player.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Phase: PhaseLost.String(), GameOver: true}
	}
	snap := g.world.Snapshot()
	length := 0
	if len(snap.Snakes) > 0 {
		length = snap.Snakes[0].Len()
	}
	return core.GameState{
		Score:    snap.Score(0),
		Length:   length,
		Ticks:    snap.Tick,
		Phase:    snap.Phase.String(),
		GameOver: snap.Phase == PhaseLost,
		Paused:   snap.Phase == PhasePaused,
	}
}
