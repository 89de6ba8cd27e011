package gamemath

import "math"

// Approach moves current toward target. The step is proportional to the
// remaining distance (rate per second) but never smaller than rate*dt, and
// the result never crosses target.
func Approach(dt, current, target, rate float64) float64 {
	diff := target - current
	if diff == 0 {
		return target
	}
	if dt <= 0 || rate <= 0 {
		return current
	}

	t := rate * dt
	step := diff * math.Min(t, 1)
	if math.Abs(step) < t {
		step = math.Copysign(t, diff)
	}
	if math.Abs(step) >= math.Abs(diff) {
		return target
	}
	return current + step
}

// Round converts a float pixel delta to whole pixels, rounding half away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// FloorDiv divides rounding toward negative infinity, so cells left of or
// above the origin stay distinct from cell 0.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
