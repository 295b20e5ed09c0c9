package gamemath

import "math"

// ApproachZero moves v toward zero by step without overshooting.
func ApproachZero(v, step float64) float64 {
	if v > step {
		return v - step
	}
	if v < -step {
		return v + step
	}
	return 0
}

// Clamp limits v to [-max, max].
func Clamp(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}

// Damp scales v by the fraction left after dt seconds of exponential decay at rate per second.
func Damp(v, rate, dt float64) float64 {
	return v * math.Exp(-rate*dt)
}

// SnapSmall returns 0 when |v| < eps.
func SnapSmall(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}
