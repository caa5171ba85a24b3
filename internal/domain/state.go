package domain

// Phase represents the lifecycle stage of a press-brake round.
type Phase string

const (
	// PhaseIdle is the per-round start state before the press is engaged.
	PhaseIdle Phase = "idle"
	// PhaseBending is the active state while the sheet is being bent.
	PhaseBending Phase = "bending"
	// PhaseStopped is the per-round end state after a bend is finalized.
	PhaseStopped Phase = "stopped"
	// PhaseGameOver is the terminal state once all rounds are played.
	PhaseGameOver Phase = "gameover"
)

// StartAngle is the flat-sheet angle every round begins from.
const StartAngle = 180.0

// MachineProfile configures one press-brake machine skin.
type MachineProfile struct {
	ID string `json:"id"`
	// FloorAngle is the minimum angle the ram permits before forcing a stop.
	FloorAngle float64 `json:"floor_angle"`
	// BendSpeed is the bend rate in degrees per second while the press is held.
	BendSpeed float64 `json:"bend_speed"`
	// TargetAngles is the candidate set round targets are drawn from.
	TargetAngles []int `json:"target_angles"`
	// MaxRounds is the number of bend attempts in a session.
	MaxRounds int `json:"max_rounds"`
}

// Session holds the authoritative state for a single operator's play session.
type Session struct {
	Machine MachineProfile

	Phase Phase

	// Round is 1-based and increments each time a bend is finalized.
	Round int
	// TargetAngle is fixed for the whole round, drawn anew on round entry.
	TargetAngle int
	// CurrentAngle is the sheet angle in degrees, within [FloorAngle, 180].
	CurrentAngle float64

	// Score accumulates round points; only a finalized bend mutates it.
	Score int
}
