package domain

import "math"

const (
	// exactHitTolerance avoids float equality when awarding the full bonus.
	exactHitTolerance = 0.5
	exactHitPoints    = 100
	// falloffPerDegree drains points linearly, reaching zero at 20 degrees off.
	falloffPerDegree = 5.0
)

// ScoreBend maps a finalized bend angle and the round target to points in
// [0, 100]. Within half a degree of the target the full bonus is awarded;
// beyond that points fall off linearly and saturate at zero.
func ScoreBend(finalAngle float64, targetAngle int) int {
	diff := math.Abs(finalAngle - float64(targetAngle))
	if diff < exactHitTolerance {
		return exactHitPoints
	}
	points := int(math.Floor(exactHitPoints - diff*falloffPerDegree))
	if points < 0 {
		return 0
	}
	return points
}
