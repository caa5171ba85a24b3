package bot

// Aim error standard deviations in degrees per skill level. The rookie also
// carries a late-release bias: it reacts slowly and tends to bend past the
// target rather than short of it.
const (
	rookieAimStdDev = 6.0
	rookieLateBias  = 2.5
	steadyAimStdDev = 2.0
	masterAimStdDev = 0.3
)

// Pacing for the demo loop, in ticks of the match loop.
const (
	// PressDelayTicks is how long a ghost admires the fresh sheet before
	// stepping on the pedal.
	PressDelayTicks = 30
	// AdvanceDelayTicks is how long the scored result stays on screen.
	AdvanceDelayTicks = 60
	// RestartDelayTicks is how long the final score board lingers before the
	// attract loop starts a new session.
	RestartDelayTicks = 150
)
