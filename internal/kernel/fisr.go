package kernel

import "math"

// magic is the seed constant subtracted from the halved float32 bit pattern.
const magic uint32 = 0x5f3759df

// Relative error bounds of FastInvSqrt, |y*sqrt(x) - 1|, measured over [1e-6, 1e10].
const (
	OneStepBound = 0.002
	TwoStepBound = 1e-5
)

// FastInvSqrt approximates 1/sqrt(x) from the float32 bit pattern of x and refines
// the guess with one Newton-Raphson step, or two when accurate is set.
// x must be positive and finite; anything else gives an unspecified result.
func FastInvSqrt(x float64, accurate bool) float64 {
	bits := math.Float32bits(float32(x))
	y := float64(math.Float32frombits(magic - bits>>1))

	half := 0.5 * x
	y *= 1.5 - half*y*y
	if accurate {
		y *= 1.5 - half*y*y
	}
	return y
}
