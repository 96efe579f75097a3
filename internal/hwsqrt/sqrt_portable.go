package hwsqrt

import "math"

const (
	mantShift = 52
	expMask   = 0x7ff
	expBias   = 1023
)

// sqrt64Portable computes a correctly rounded square root with integer
// arithmetic only, one result bit per loop round (the classic e_sqrt
// bit-by-bit method). Slow but exact on every GOARCH.
func sqrt64Portable(x float64) float64 {
	switch {
	case x == 0 || math.IsNaN(x) || math.IsInf(x, 1):
		return x
	case x < 0:
		return math.NaN()
	}

	ix := math.Float64bits(x)
	exp := int((ix >> mantShift) & expMask)
	if exp == 0 {
		// Subnormal: normalize the mantissa and adjust the exponent.
		for ix&(1<<mantShift) == 0 {
			ix <<= 1
			exp--
		}
		exp++
	}
	exp -= expBias
	ix &^= uint64(expMask) << mantShift
	ix |= 1 << mantShift
	if exp&1 == 1 {
		// Odd exponent: double x so the halved exponent stays integral.
		ix <<= 1
	}
	exp >>= 1

	// Generate the result one bit at a time, MSB first.
	ix <<= 1
	var q, s uint64
	r := uint64(1 << (mantShift + 1))
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}

	if ix != 0 {
		// Non-zero remainder: round up on the extra bit.
		q += q & 1
	}
	ix = q>>1 + uint64(exp-1+expBias)<<mantShift
	return math.Float64frombits(ix)
}
