package utils

import (
	"math"
	"math/rand"
)

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// SaturatingInt floors v and clamps it to [-limit, limit]. NaN maps to 0.
func SaturatingInt(v float64, limit int) int {
	if math.IsNaN(v) {
		return 0
	}
	f := math.Floor(v)
	if f > float64(limit) {
		return limit
	}
	if f < -float64(limit) {
		return -limit
	}
	return int(f)
}

// TruncatingInt is SaturatingInt rounding toward zero instead of down.
func TruncatingInt(v float64, limit int) int {
	if math.IsNaN(v) {
		return 0
	}
	f := math.Trunc(v)
	if f > float64(limit) {
		return limit
	}
	if f < -float64(limit) {
		return -limit
	}
	return int(f)
}

// RandomSign returns -1 or 1 with equal odds.
func RandomSign(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// NewClampedStochasticVector returns a unit vector that points mostly along
// the horizontal axis, skewed by a random angle and flipped into a random
// quadrant.
func NewClampedStochasticVector(rng *rand.Rand) (float64, float64) {
	degrees := LaunchSpreadDegrees*(rng.Float64()-0.5) + LaunchSkewDegrees*rng.Float64()
	radians := DegreesToRadians(degrees)

	xDir := RandomSign(rng)
	yDir := RandomSign(rng)

	return math.Cos(radians) * xDir, math.Sin(radians) * yDir
}
