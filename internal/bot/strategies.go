package bot

import "math/rand"

// RookieGhost bends with visible sloppiness. It draws a wide aim error and
// leans toward releasing late, which reads naturally on the attract screen.
type RookieGhost struct{}

func (RookieGhost) PlanRelease(rng *rand.Rand, targetAngle int) float64 {
	return float64(targetAngle) - rookieLateBias + rng.NormFloat64()*rookieAimStdDev
}
