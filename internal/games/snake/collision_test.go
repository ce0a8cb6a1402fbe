package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDetectEatInPlace(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w, place(core.DirUp, core.Cell{X: 2, Y: 2}, core.Cell{X: 2, Y: 3}))
	food := w.placeFood(core.Cell{X: 2, Y: 2})

	events := w.detectCollisions()
	if len(events.Eat) != 1 || len(events.Bump) != 0 {
		t.Fatalf("events = %+v, expected exactly one Eat", events)
	}
	if e := events.Eat[0]; e.Eater != w.snakes[0].Head || e.Eaten != food {
		t.Errorf("Eat = %+v, expected eater %d eaten %d", e, w.snakes[0].Head, food)
	}
}

func TestEatGrowsAtVacatedTail(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w, place(core.DirRight,
		core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5}, core.Cell{X: 3, Y: 5}, core.Cell{X: 2, Y: 5}))
	w.placeFood(core.Cell{X: 6, Y: 5})

	rep := w.Tick()

	if len(rep.Events.Eat) != 1 || rep.Grown != 1 {
		t.Fatalf("report = %+v, expected one Eat and one growth", rep)
	}
	if w.foods.len() != 0 {
		t.Errorf("food count = %d, expected 0", w.foods.len())
	}
	if w.snakes[0].Food != 1 {
		t.Errorf("score = %d, expected 1", w.snakes[0].Food)
	}
	assertCells(t, positions(w, 0), []core.Cell{
		{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5},
	})
}

func TestGrowthByN(t *testing.T) {
	w := newTestWorld(t, testConfig())
	const n = 6

	for i := 0; i < n; i++ {
		head := w.chains.Segment(w.snakes[0].Head).Pos
		w.placeFood(w.grid.Step(head, w.snakes[0].Direction))
		if rep := w.Tick(); rep.Grown != 1 {
			t.Fatalf("eat %d: grown = %d", i, rep.Grown)
		}
	}

	if got := w.chains.Len(w.snakes[0].Head); got != 4+n {
		t.Errorf("length = %d, expected %d", got, 4+n)
	}
	if w.snakes[0].Food != n {
		t.Errorf("score = %d, expected %d", w.snakes[0].Food, n)
	}
	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %s, expected playing", w.Phase())
	}
}

// curled lays a snake out so that moving right drives the head into its own tail.
func curled() placedSnake {
	return place(core.DirRight,
		core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 6}, core.Cell{X: 6, Y: 6},
		core.Cell{X: 6, Y: 5}, core.Cell{X: 6, Y: 4})
}

func TestBumpLosesGame(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w, curled())
	tail := w.chains.TailOf(w.snakes[0].Head)

	rep := w.Tick()

	if len(rep.Events.Bump) != 1 {
		t.Fatalf("bumps = %+v, expected 1", rep.Events.Bump)
	}
	if rep.Events.Bump[0].Obstacle != tail {
		t.Errorf("obstacle = %d, expected tail %d", rep.Events.Bump[0].Obstacle, tail)
	}
	if !rep.Lost || w.Phase() != PhaseLost {
		t.Errorf("phase = %s, expected lost", w.Phase())
	}
}

func TestNothingChangesAfterLoss(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w, curled())
	w.Tick()

	before := w.Snapshot()
	_ = w.Press(0, core.DirUp)

	if rep := w.Tick(); rep.Ran {
		t.Error("Tick ran after loss")
	}
	if rep := w.Advance(5 * w.cfg.Timing.FoodInterval); len(rep.Ticks) != 0 || len(rep.Spawned) != 0 {
		t.Errorf("Advance after loss = %+v, expected nothing", rep)
	}
	if w.TogglePause() != PhaseLost {
		t.Error("toggle must not leave the lost phase")
	}

	after := w.Snapshot()
	if before.String() != after.String() {
		t.Errorf("state changed after loss:\n%s\n%s", before, after)
	}
}

func TestEatResolvesBeforeBump(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w, curled())
	// The head lands on (6,5) together with the tail.
	w.placeFood(core.Cell{X: 6, Y: 5})

	rep := w.Tick()

	if len(rep.Events.Eat) != 1 || len(rep.Events.Bump) == 0 {
		t.Fatalf("events = %+v, expected an Eat and a Bump", rep.Events)
	}
	if w.snakes[0].Food != 1 {
		t.Errorf("score = %d, expected the eat to count", w.snakes[0].Food)
	}
	if w.chains.Len(w.snakes[0].Head) != 6 {
		t.Errorf("length = %d, expected 6", w.chains.Len(w.snakes[0].Head))
	}
	if w.Phase() != PhaseLost {
		t.Errorf("phase = %s, expected lost", w.Phase())
	}
}

func TestTwoHeadsOneFood(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w,
		place(core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5}, core.Cell{X: 3, Y: 5}),
		place(core.DirLeft, core.Cell{X: 7, Y: 5}, core.Cell{X: 8, Y: 5}, core.Cell{X: 9, Y: 5}),
	)
	w.placeFood(core.Cell{X: 6, Y: 5})

	rep := w.Tick()

	if len(rep.Events.Eat) != 2 {
		t.Fatalf("eats = %+v, expected 2", rep.Events.Eat)
	}
	if rep.Events.Eat[0].Snake != 0 || rep.Events.Eat[1].Snake != 1 {
		t.Errorf("eat order = %+v, expected snake 0 then snake 1", rep.Events.Eat)
	}
	if rep.Grown != 1 {
		t.Errorf("grown = %d, expected only the first eater to grow", rep.Grown)
	}
	if w.snakes[0].Food != 1 || w.snakes[1].Food != 0 {
		t.Errorf("scores = %d, %d; expected 1, 0", w.snakes[0].Food, w.snakes[1].Food)
	}
	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %s; heads are not obstacles", w.Phase())
	}
}

func TestHeadIntoOtherSnakeBody(t *testing.T) {
	w := newTestWorld(t, testConfig())
	replaceSnakes(w,
		place(core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5}, core.Cell{X: 3, Y: 5}),
		place(core.DirDown, core.Cell{X: 5, Y: 4}, core.Cell{X: 5, Y: 3}, core.Cell{X: 5, Y: 2}),
	)
	neck := w.chains.Segment(w.snakes[0].Head).Back

	rep := w.Tick()

	if len(rep.Events.Bump) != 1 {
		t.Fatalf("bumps = %+v, expected 1", rep.Events.Bump)
	}
	b := rep.Events.Bump[0]
	if b.Snake != 1 || b.Obstacle != neck {
		t.Errorf("bump = %+v, expected snake 1 against segment %d", b, neck)
	}
	if w.Phase() != PhaseLost {
		t.Errorf("phase = %s, expected lost", w.Phase())
	}
}
