package gamemath

import "math"

// Approach moves value toward target by at most step, never overshooting.
func Approach(value, target, step float64) float64 {
	if step <= 0 {
		return value
	}
	if value < target {
		return math.Min(value+step, target)
	}
	if value > target {
		return math.Max(value-step, target)
	}
	return value
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampInt constrains value to [lo, hi].
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// FrameRatio converts an elapsed time into "reference frames", so that a
// tuning constant expressed per reference frame can be applied at any rate.
func FrameRatio(dt float64, referenceFPS int) float64 {
	if referenceFPS <= 0 {
		return 0
	}
	return SafeDelta(dt) * float64(referenceFPS)
}

// Decay scales value by factor^ratio. With ratio 1 this is a plain per-frame
// multiplication.
func Decay(value, factor, ratio float64) float64 {
	if ratio == 1 {
		return value * factor
	}
	return value * math.Pow(factor, ratio)
}

// ApproachExp moves value toward target, closing (1-factor^ratio) of the
// remaining distance.
func ApproachExp(value, target, factor, ratio float64) float64 {
	return target - Decay(target-value, factor, ratio)
}

// ApplyFriction decays speed exponentially and snaps it to zero once it
// falls inside the dead zone.
func ApplyFriction(speed, factor, ratio, deadZone float64) float64 {
	speed = Decay(speed, factor, ratio)
	if math.Abs(speed) < deadZone {
		return 0
	}
	return speed
}

// SafeDelta returns v, or 0 when v is NaN or infinite.
func SafeDelta(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
