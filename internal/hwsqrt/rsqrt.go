package hwsqrt

import "math"

// rsqrtMagic seeds the reciprocal-root estimate: subtracting the halved
// bit pattern from this constant negates and halves the biased binary32
// exponent, giving a piecewise-linear approximation of x^(-1/2).
const rsqrtMagic uint32 = 0x5f3759df

// RSqrt32 returns a reduced-precision estimate of 1/sqrt(x), mirroring the
// semantics of the hardware fast-reciprocal-root instruction: roughly
// 12-bit accuracy, +Inf at zero, NaN for negative inputs.
//
// No hardware fast-reciprocal instruction is reachable from pure Go, so
// this is always the software substitute: a bit-pattern seed plus one
// internal refinement round, which lands in the same accuracy class as
// the hardware estimate (relative error below 0.2%) at the cost of a few
// extra multiplies per call.
func RSqrt32(x float32) float32 {
	if x < 0 {
		return float32(math.NaN())
	}
	if x == 0 {
		return float32(math.Inf(1))
	}
	i := math.Float32bits(x)
	i = rsqrtMagic - i>>1
	y := math.Float32frombits(i)
	// The raw seed is within ~3.4% of 1/sqrt(x); one refinement round
	// tightens it into the hardware-estimate class.
	y = y * (1.5 - 0.5*x*y*y)
	return y
}
