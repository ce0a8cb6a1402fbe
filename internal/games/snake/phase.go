package snake

// Phase is the game-wide state gating which systems run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseLost // Terminal: only a full restart leaves it
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Trigger is an input to the phase machine.
type Trigger int

const (
	TriggerToggle Trigger = iota + 1 // Pause key
	TriggerBump                      // Head ran into a segment
)

func (t Trigger) String() string {
	switch t {
	case TriggerToggle:
		return "toggle"
	case TriggerBump:
		return "bump"
	default:
		return "unknown"
	}
}

// System identifies a stage of the tick pipeline.
type System int

const (
	SystemMovement System = iota
	SystemFood
	SystemCollision
	SystemResolver
)

// transitions is the complete phase table. Pairs not listed are no-ops.
var transitions = map[Phase]map[Trigger]Phase{
	PhasePlaying: {
		TriggerToggle: PhasePaused,
		TriggerBump:   PhaseLost,
	},
	PhasePaused: {
		TriggerToggle: PhasePlaying,
	},
}

// gates lists the systems each phase lets run.
var gates = map[Phase]map[System]bool{
	PhasePlaying: {
		SystemMovement:  true,
		SystemFood:      true,
		SystemCollision: true,
		SystemResolver:  true,
	},
}

// Allows reports whether system s runs in phase p.
func (p Phase) Allows(s System) bool {
	return gates[p][s]
}

// Next returns the phase reached from p on trigger t, and whether it changed.
func (p Phase) Next(t Trigger) (Phase, bool) {
	next, ok := transitions[p][t]
	if !ok || next == p {
		return p, false
	}
	return next, true
}

// PhaseController holds the current phase and applies triggers to it.
type PhaseController struct {
	current  Phase
	onChange func(from, to Phase, t Trigger)
}

// NewPhaseController starts in PhasePlaying.
func NewPhaseController(onChange func(from, to Phase, t Trigger)) *PhaseController {
	return &PhaseController{current: PhasePlaying, onChange: onChange}
}

// Current returns the active phase.
func (c *PhaseController) Current() Phase {
	return c.current
}

// Fire applies t and reports whether the phase changed.
func (c *PhaseController) Fire(t Trigger) bool {
	next, changed := c.current.Next(t)
	if !changed {
		return false
	}
	from := c.current
	c.current = next
	if c.onChange != nil {
		c.onChange(from, next, t)
	}
	return true
}
