package bot

import (
	"math/rand"
	"time"

	"pressbrake/internal/domain"
)

// Agent is an autonomous ghost operator driving a demo session. The match
// loop calls Act once per tick and applies the returned action through the
// same app-service entry points a human's messages would take.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain

	rng *rand.Rand

	// plannedRelease is the angle the ghost will let go at for the current
	// round; planned is false until the round's plan is drawn.
	plannedRelease float64
	planned        bool
}

// NewAgent constructs a ghost agent. rng may be nil for a time-seeded default.
func NewAgent(id, name string, level GhostLevel, rng *rand.Rand) (*Agent, error) {
	brain, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{
		ID:       id,
		Name:     name,
		Strategy: brain,
		rng:      rng,
	}, nil
}

// Act inspects the session and returns the ghost's input for this tick.
// Pacing delays between actions are owned by the match loop.
func (a *Agent) Act(session *domain.Session) Action {
	switch session.Phase {
	case domain.PhaseIdle:
		if !a.planned {
			plan := a.Strategy.PlanRelease(a.rng, session.TargetAngle)
			a.plannedRelease = clampPlan(plan, session.Machine)
			a.planned = true
		}
		return ActionPress
	case domain.PhaseBending:
		if session.CurrentAngle <= a.plannedRelease {
			a.planned = false
			return ActionRelease
		}
		return ActionNone
	case domain.PhaseStopped:
		a.planned = false
		return ActionAdvance
	case domain.PhaseGameOver:
		a.planned = false
		return ActionRestart
	default:
		return ActionNone
	}
}
