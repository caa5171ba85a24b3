package app

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventRoundStarted EventKind = "round_started"
	EventBendStarted  EventKind = "bend_started"
	EventBendStopped  EventKind = "bend_stopped"
	EventSessionEnded EventKind = "session_ended"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

// RoundStartedPayload announces a fresh round with its drawn target.
type RoundStartedPayload struct {
	Round       int
	MaxRounds   int
	TargetAngle int
}

// BendStartedPayload signals the press engaged; clients start tone feedback.
type BendStartedPayload struct {
	Round int
}

// BendStoppedPayload carries the finalized bend and its scoring result.
// Forced is true when the ram hit the machine floor rather than the operator
// releasing the pedal; the transition and scoring are identical either way.
type BendStoppedPayload struct {
	Round       int
	FinalAngle  float64
	TargetAngle int
	Points      int
	TotalScore  int
	Forced      bool
}

// SessionEndedPayload closes out the session after the last round.
type SessionEndedPayload struct {
	TotalScore    int
	RoundsPlayed  int
	CreditsEarned int64
}
