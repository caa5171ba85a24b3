package bot

import "math/rand"

// MasterGhost aims for the exact-hit bonus nearly every round. The residual
// jitter keeps the demo reel from looking scripted.
type MasterGhost struct{}

func (MasterGhost) PlanRelease(rng *rand.Rand, targetAngle int) float64 {
	return float64(targetAngle) + rng.NormFloat64()*masterAimStdDev
}
