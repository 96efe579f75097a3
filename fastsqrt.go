package fastsqrt

import (
	"math"

	"github.com/hupe1980/fastsqrt/internal/hwsqrt"
)

// Iteration counts for the refining methods. These are tuned defaults for
// inputs in roughly [1e-10, 1e10], not proven bounds for every
// representable magnitude; the accuracy test suite is the sufficiency
// evidence.
const (
	// NewtonRounds is the fixed round count for SqrtNewton. The naive seed
	// (x itself) needs several rounds just to enter the quadratic regime,
	// so large inputs remain far off after this many.
	NewtonRounds = 5

	// BisectRounds is the fixed round count for SqrtBisect. Bisection
	// gains one bit of precision per round.
	BisectRounds = 50

	// RSqrtRefineRounds is the number of reciprocal-root refinement rounds
	// SqrtRSqrt applies on top of the backend estimate.
	RSqrtRefineRounds = 1

	// BithackRounds is the number of Newton rounds SqrtBithack applies to
	// its bit-pattern seed.
	BithackRounds = 2

	// OptimalRounds is the number of Newton rounds SqrtOptimal applies.
	// The bit-pattern seed is within a few percent of the root, so two
	// rounds suffice where the naive seed needs five or more.
	OptimalRounds = 2
)

// Bit-pattern seed constants, derived from the IEEE-754 exponent bias
// (127 for binary32, 1023 for binary64). The shift on the raw bit pattern
// halves the biased exponent, exploiting the logarithm-halving identity
// sqrt(2^e) = 2^(e/2). These must match bit-for-bit.
const (
	bithackMagic uint32 = 1<<29 - 1<<22
	optimalMagic uint64 = 0x3ff0000000000000
)

// Sqrt returns the exact square root of x using the active backend (the
// hardware instruction where available, the portable bit-by-bit kernel
// otherwise). Negative inputs return NaN.
func Sqrt(x float64) float64 {
	return hwsqrt.Sqrt64(x)
}

// SqrtNewton approximates the square root of x with NewtonRounds rounds of
// the update g = 0.5*(g + x/g), seeded with x itself. Convergence is
// quadratic once near the root, but the naive seed makes the fixed round
// count insufficient for large magnitudes.
func SqrtNewton(x float64) float64 {
	if x < 0 {
		return math.NaN()
	}
	if x == 0 {
		return 0
	}
	return sqrtNewtonRounds(x, NewtonRounds)
}

func sqrtNewtonRounds(x float64, rounds int) float64 {
	guess := x
	for i := 0; i < rounds; i++ {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}

// SqrtBisect approximates the square root of x by bisecting a bracketing
// interval for BisectRounds rounds and returning the final midpoint. This
// is the deliberately slow baseline: linear convergence, one bit per
// round.
func SqrtBisect(x float64) float64 {
	if x < 0 {
		return math.NaN()
	}
	if x == 0 {
		return 0
	}
	return sqrtBisectRounds(x, BisectRounds)
}

func sqrtBisectRounds(x float64, rounds int) float64 {
	// high = max(x, 1) guarantees high*high >= x for x < 1 as well.
	low, high := 0.0, max(x, 1)
	for i := 0; i < rounds; i++ {
		mid := (low + high) / 2
		if mid*mid < x {
			low = mid
		} else {
			high = mid
		}
	}
	return (low + high) / 2
}

// SqrtRSqrt recovers the square root from the backend's fast
// reciprocal-root estimate: one round of the refinement
// y = y*(1.5 - 0.5*x*y*y) on the estimate, then sqrt(x) = x*y.
// Single precision, reduced accuracy.
func SqrtRSqrt(x float32) float32 {
	if x < 0 {
		return nan32()
	}
	if x == 0 {
		return 0
	}
	y := hwsqrt.RSqrt32(x)
	for i := 0; i < RSqrtRefineRounds; i++ {
		y = y * (1.5 - 0.5*x*y*y)
	}
	return x * y
}

// SqrtBithack approximates the square root of x by reinterpreting the
// binary32 bit pattern as an integer, halving the biased exponent field,
// and refining the resulting seed with BithackRounds Newton rounds. No
// hardware support needed; single precision.
func SqrtBithack(x float32) float32 {
	if x < 0 {
		return nan32()
	}
	if x == 0 {
		return 0
	}
	return sqrtBithackRounds(x, BithackRounds)
}

func sqrtBithackRounds(x float32, rounds int) float32 {
	i := math.Float32bits(x)
	i = bithackMagic + i>>1
	guess := math.Float32frombits(i)
	for n := 0; n < rounds; n++ {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}

// SqrtHardware returns the exact single-precision square root via the
// backend's single-instruction primitive. Accuracy is that of the
// hardware: correctly rounded per IEEE-754.
func SqrtHardware(x float32) float32 {
	if x < 0 {
		return nan32()
	}
	if x == 0 {
		return 0
	}
	return hwsqrt.Sqrt32(x)
}

// SqrtOptimal approximates the square root of x in double precision from
// a bit-pattern seed refined with OptimalRounds Newton rounds. Near
// hardware accuracy at a fraction of the naive-seed iteration count.
func SqrtOptimal(x float64) float64 {
	if x < 0 {
		return math.NaN()
	}
	if x == 0 {
		return 0
	}
	if x == 1 {
		return 1
	}
	return sqrtOptimalRounds(x, OptimalRounds)
}

func sqrtOptimalRounds(x float64, rounds int) float64 {
	i := math.Float64bits(x)
	i = i>>1 + optimalMagic>>1
	guess := math.Float64frombits(i)
	for n := 0; n < rounds; n++ {
		guess = 0.5 * (guess + x/guess)
	}
	return guess
}

func nan32() float32 {
	return float32(math.NaN())
}
