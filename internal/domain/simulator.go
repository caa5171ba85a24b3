package domain

// Advance moves the bend angle forward by the elapsed time at the given rate.
// The angle decreases monotonically; there is no over-bend and spring back.
// When the computed angle would fall below floor it is clamped to floor
// exactly and clamped=true is returned. Advance never fails.
func Advance(angle, speed, elapsed, floor float64) (newAngle float64, clamped bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	newAngle = angle - speed*elapsed
	if newAngle <= floor {
		return floor, true
	}
	return newAngle, false
}
