package bot

import (
	"math/rand"

	"pressbrake/internal/domain"
)

// Action is the control input a ghost operator produces for one tick.
type Action int

const (
	// ActionNone leaves the machine untouched this tick.
	ActionNone Action = iota
	// ActionPress engages the pedal and starts the bend.
	ActionPress
	// ActionRelease lets go of the pedal and finalizes the bend.
	ActionRelease
	// ActionAdvance moves on to the next round.
	ActionAdvance
	// ActionRestart starts the demo session over after game over.
	ActionRestart
)

// Brain is the interface all ghost skill levels implement.
type Brain interface {
	// PlanRelease picks the angle at which the ghost intends to release the
	// pedal for a round with the given target. The plan is clamped to the
	// machine's reachable range by the agent.
	PlanRelease(rng *rand.Rand, targetAngle int) float64
}

// GhostLevel selects a ghost operator skill level.
type GhostLevel int

const (
	GhostLevelRookie GhostLevel = iota
	GhostLevelSteady
	GhostLevelMaster
)

// clampPlan keeps a planned release inside what the machine can express.
func clampPlan(plan float64, machine domain.MachineProfile) float64 {
	if plan < machine.FloorAngle {
		return machine.FloorAngle
	}
	if plan > domain.StartAngle {
		return domain.StartAngle
	}
	return plan
}
