package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoSuchSnake is returned when input targets a snake index that does not exist.
var ErrNoSuchSnake = errors.New("snake: no such snake")

// Snake is one player: a handle to its head segment, its committed heading,
// the food it has eaten and its input latch.
type Snake struct {
	Index     int
	Head      EntityID
	Direction core.Direction
	Food      int

	input InputBuffer
	// vacated is the cell the tail left on the last move. Growth puts the
	// new segment there.
	vacated core.Cell
}

// Food is an edible item on the grid.
type Food struct {
	Pos core.Cell
}

// World is the authoritative simulation state. Every mutation happens under
// the write lock, one whole pipeline pass at a time, so readers calling
// Snapshot never observe a partially applied tick.
type World struct {
	mu sync.RWMutex

	cfg    config.SnakeConfig
	grid   core.Grid
	ids    idAllocator
	chains *Chains
	foods  *store[Food]
	snakes []*Snake
	phase  *PhaseController
	clock  *Clock
	rng    *rand.Rand
	log    *log.Logger
	tick   uint64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for simulation events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSeed seeds the food placement RNG.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for food placement.
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// NewWorld validates cfg, spawns every configured snake and, if enabled,
// the first food.
func NewWorld(cfg config.SnakeConfig, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	w := &World{
		cfg:   cfg,
		grid:  cfg.Grid(),
		foods: newStore[Food](),
		clock: NewClock(cfg.Timing),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		log:   log.New(io.Discard),
	}
	w.chains = newChains(&w.ids)
	for _, opt := range opts {
		opt(w)
	}
	w.phase = NewPhaseController(w.logPhaseChange)

	for i, sp := range cfg.Snake.Spawns {
		w.spawnSnake(cfg.SpawnCells(i), sp.Direction)
	}
	if cfg.Food.Initial {
		w.spawnFood()
	}

	w.log.Info("world created",
		"arena", fmt.Sprintf("%dx%d", w.grid.Width, w.grid.Height),
		"snakes", len(w.snakes),
		"tick", cfg.Timing.TickInterval)
	return w, nil
}

// spawnSnake builds a chain over cells (head first) and registers a snake.
func (w *World) spawnSnake(cells []core.Cell, dir core.Direction) *Snake {
	head := w.chains.SpawnHead(cells[0])
	tail := head
	for _, c := range cells[1:] {
		tail = w.chains.AppendTail(tail, c)
	}

	s := &Snake{
		Index:     len(w.snakes),
		Head:      head,
		Direction: dir,
		vacated:   cells[len(cells)-1],
	}
	w.snakes = append(w.snakes, s)
	return s
}

func (w *World) logPhaseChange(from, to Phase, t Trigger) {
	w.log.Info("phase changed", "from", from, "to", to, "trigger", t, "tick", w.tick)
}

// Grid returns the arena bounds.
func (w *World) Grid() core.Grid {
	return w.grid
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.SnakeConfig {
	return w.cfg
}

// Phase returns the current game phase.
func (w *World) Phase() Phase {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.phase.Current()
}

// Press buffers a direction for snake i. The latest press before a tick wins.
func (w *World) Press(i int, d core.Direction) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i < 0 || i >= len(w.snakes) {
		return fmt.Errorf("%w: %d", ErrNoSuchSnake, i)
	}
	w.snakes[i].input.Press(d)
	return nil
}

// TogglePause flips Playing and Paused. It has no effect once the game is lost.
func (w *World) TogglePause() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.phase.Fire(TriggerToggle)
	return w.phase.Current()
}

// TickReport describes one pass of the tick pipeline.
type TickReport struct {
	Tick   uint64
	Ran    bool   // False when the phase gated the pipeline
	Events Events // Collisions detected this tick
	Grown  int    // Segments appended by Eat events
	Lost   bool   // A Bump ended the game this tick
}

// Tick runs one pass of the pipeline regardless of the clock:
// movement, collision detection, event resolution, phase transition.
func (w *World) Tick() TickReport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step()
}

func (w *World) step() TickReport {
	if !w.phase.Current().Allows(SystemMovement) {
		return TickReport{Tick: w.tick}
	}
	w.tick++

	w.moveSnakes()

	var events Events
	if w.phase.Current().Allows(SystemCollision) {
		events = w.detectCollisions()
	}

	report := TickReport{Tick: w.tick, Ran: true, Events: events}
	if w.phase.Current().Allows(SystemResolver) {
		res := w.resolve(events)
		report.Grown = res.grown
		report.Lost = res.lost
	}
	return report
}

// AdvanceReport summarizes one Advance call.
type AdvanceReport struct {
	Ticks   []TickReport
	Spawned []EntityID
	Phase   Phase
}

// Advance feeds dt of simulated time to the fixed-timestep clock and runs
// every movement tick and food spawn that falls due. Timers are frozen
// outside the Playing phase.
func (w *World) Advance(dt time.Duration) AdvanceReport {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.phase.Current().Allows(SystemMovement) {
		return AdvanceReport{Phase: w.phase.Current()}
	}

	ticks, spawns := w.clock.Advance(dt)
	var report AdvanceReport
	for i := 0; i < ticks; i++ {
		tr := w.step()
		report.Ticks = append(report.Ticks, tr)
		if tr.Lost {
			break
		}
	}

	for i := 0; i < spawns; i++ {
		if !w.phase.Current().Allows(SystemFood) {
			break
		}
		if id, ok := w.spawnFood(); ok {
			report.Spawned = append(report.Spawned, id)
		}
	}

	report.Phase = w.phase.Current()
	return report
}

// SpawnFood fires the food spawner once, outside of the timer.
func (w *World) SpawnFood() (EntityID, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spawnFood()
}
