package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSimTicks  int
	flagSimRender bool
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless game steered by the autopilot",
	Long: `Run the simulation without a terminal UI. A simple autopilot steers
toward the nearest food while avoiding segments. Each step advances the
clock by exactly one movement tick, so the food timer runs at its
configured rate relative to movement.

With the same --seed and config, two runs produce identical output.

Examples:
  snake sim
  snake sim snake_feast --ticks 5000 --seed 42
  snake sim --render
  snake sim --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 1000, "Maximum number of movement ticks")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final board")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the result to the results database")
}

// simOutcome summarizes a headless run.
type simOutcome struct {
	Snapshot snake.Snapshot
	Ticks    int
	Stuck    bool // The autopilot found no safe move at some point
}

func runSim(cmd *cobra.Command, args []string) error {
	variantID, err := variantArg(args)
	if err != nil {
		return err
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	v, _ := snake.LookupVariant(variantID)
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := snake.New(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	if g.Err() != nil {
		return g.Err()
	}

	logger.Info("sim started", "variant", variantID, "seed", seed, "ticks", flagSimTicks)
	outcome := simulate(g.World(), flagSimTicks)
	logger.Info("sim finished", "phase", outcome.Snapshot.Phase, "ticks", outcome.Ticks)

	out := cmd.OutOrStdout()
	printOutcome(out, variantID, seed, outcome)

	if flagSimRender {
		screen := core.NewScreen(g.World().Grid().Width*2+2, g.World().Grid().Height+4)
		g.Render(screen)
		fmt.Fprintln(out)
		fmt.Fprintln(out, screen.String())
	}

	if flagSimRecord {
		return recordSim(out, variantID, outcome)
	}
	return nil
}

// simulate runs up to maxTicks movement ticks, steering snake 0 with the
// autopilot. It stops early when the game is lost.
func simulate(w *snake.World, maxTicks int) simOutcome {
	interval := w.Config().Timing.TickInterval
	var outcome simOutcome

	for outcome.Ticks < maxTicks {
		if dir, ok := snake.Autopilot(w.Snapshot(), 0); ok {
			//nolint:errcheck // snake 0 always exists
			w.Press(0, dir)
		} else {
			outcome.Stuck = true
		}

		rep := w.Advance(interval)
		outcome.Ticks += len(rep.Ticks)
		if rep.Phase == snake.PhaseLost {
			break
		}
	}

	outcome.Snapshot = w.Snapshot()
	return outcome
}

func printOutcome(out io.Writer, variant string, seed int64, o simOutcome) {
	fmt.Fprintf(out, "Variant: %s  Seed: %d\n", variant, seed)
	fmt.Fprint(out, o.Snapshot.String())

	status := "survived"
	if o.Snapshot.Phase == snake.PhaseLost {
		status = "lost"
	}
	fmt.Fprintf(out, "Result: %s after %d ticks, food %d\n", status, o.Ticks, o.Snapshot.Score(0))
	if o.Stuck {
		fmt.Fprintln(out, "Note: the autopilot was boxed in at least once")
	}
}

func recordSim(out io.Writer, variant string, o simOutcome) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	length := 0
	if len(o.Snapshot.Snakes) > 0 {
		length = o.Snapshot.Snakes[0].Len()
	}
	id, err := store.SaveResult(storage.Result{
		Variant: variant,
		Score:   o.Snapshot.Score(0),
		Length:  length,
		Ticks:   o.Snapshot.Tick,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Recorded result #%d\n", id)
	return nil
}
