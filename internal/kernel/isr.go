package kernel

import "math"

const (
	mantBits = 23
	expMask  = 0x7f800000
	bias     = 127
)

// BitSqrtBound bounds |1/BitSqrt(x) * sqrt(x) - 1|, the floor quantization
// to float32.
const BitSqrtBound = 1.0 / (1 << 22)

// BitSqrt returns the largest float32 whose square does not exceed x,
// found by seeding the exponent at half of x's exponent and then searching the
// 23 mantissa bits from the most significant down. With inverse set the
// reciprocal of that value is returned instead.
// x must be positive and finite.
func BitSqrt(x float64, inverse bool) float64 {
	// (E-127)>>1 is floor division, also for negative unbiased exponents.
	exp := int32((math.Float32bits(float32(x))&expMask)>>mantBits) - bias
	cur := uint32((exp>>1)+bias) << mantBits
	// float32(x) may round up into the next binade
	if s := float64(math.Float32frombits(cur)); s*s > x {
		cur -= 1 << mantBits
	}

	for i := mantBits - 1; i >= 0; i-- {
		inc := uint32(1) << i
		est := float64(math.Float32frombits(cur + inc))
		// exact: two 24-bit significands multiply into 48 bits
		if est*est <= x {
			cur += inc
		}
	}

	r := float64(math.Float32frombits(cur))
	if inverse {
		return 1 / r
	}
	return r
}
