package bot

import "math/rand"

// SteadyGhost lands most bends inside the scoring falloff but rarely takes
// the exact-hit bonus.
type SteadyGhost struct{}

func (SteadyGhost) PlanRelease(rng *rand.Rand, targetAngle int) float64 {
	return float64(targetAngle) + rng.NormFloat64()*steadyAimStdDev
}
