package gamemath

import (
	"math"

	"github.com/tanema/gween/ease"
)

// TriangleWave maps x (in half-periods) to a ping-pong value in [0, 1]:
// 0 -> 1 over the first unit, 1 -> 0 over the second, repeating.
// TriangleWave(0) == 0.
func TriangleWave(x float64) float64 {
	if x < 0 {
		x = -x
	}
	frac := x - math.Floor(x/2)*2 // position within a 2-unit cycle
	if frac > 1 {
		return 2 - frac
	}
	return frac
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smooth applies a sinusoidal in-out ease to t in [0, 1].
func Smooth(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(ease.InOutSine(float32(t), 0, 1, 1))
}

// WrapAngle normalizes an angle in radians to [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// TogglePhase returns 0 or 1 for a square wave that flips every
// interval seconds. Pure in elapsed time: no accumulated state, so the
// current phase can be computed after any gap.
func TogglePhase(elapsed, interval float64) int {
	if elapsed < 0 {
		return 0
	}
	return int(math.Floor(elapsed/interval)) % 2
}
