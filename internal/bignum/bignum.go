// Package bignum provides arbitrary-precision helpers for accuracy
// accounting: high-precision reference roots and the conversion of a
// relative error into equivalent correct mantissa bits.
package bignum

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// defaultPrec is plenty for comparing binary64 results.
const defaultPrec = 128

// NewFloat creates a big.Float from x with prec bits of precision.
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Sqrt returns the square root of x at the precision of x.
func Sqrt(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.Prec()).Sqrt(x)
}

// Log returns the natural logarithm of x at the precision of x.
// x must be positive.
func Log(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}

// CorrectBits converts a relative error into equivalent correct mantissa
// bits, -log2(rel), saturating at maxBits. A zero or negative rel means
// the result was exact at the measured precision.
func CorrectBits(rel float64, maxBits float64) float64 {
	if rel <= 0 {
		return maxBits
	}
	bits := new(big.Float).Quo(
		Log(NewFloat(rel, defaultPrec)),
		Log(NewFloat(2, defaultPrec)),
	)
	f, _ := bits.Float64()
	if -f > maxBits {
		return maxBits
	}
	return -f
}
