package domain

import "math/rand"

// DrawTarget picks a round target uniformly from the machine's candidate set.
func DrawTarget(rng *rand.Rand, machine MachineProfile) int {
	if len(machine.TargetAngles) == 0 {
		panic("machine profile has no target angles")
	}
	return machine.TargetAngles[rng.Intn(len(machine.TargetAngles))]
}

// NewSession returns a fresh session on the given machine, positioned at the
// start of round 1 with the provided target.
func NewSession(machine MachineProfile, target int) *Session {
	return &Session{
		Machine:      machine,
		Phase:        PhaseIdle,
		Round:        1,
		TargetAngle:  target,
		CurrentAngle: StartAngle,
	}
}

// ResetForRound positions the session at the start of a new round with a
// fresh target. The accumulated score and round counter are untouched.
func (s *Session) ResetForRound(target int) {
	s.TargetAngle = target
	s.CurrentAngle = StartAngle
	s.Phase = PhaseIdle
}

// RoundsRemaining reports whether another bend attempt is allowed.
func (s *Session) RoundsRemaining() bool {
	return s.Round <= s.Machine.MaxRounds
}
