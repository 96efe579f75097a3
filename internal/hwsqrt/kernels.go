package hwsqrt

import "math"

// Kernel function pointers - set once at init, zero runtime overhead.
// Portable implementations are the default; selectBackend overrides with
// hardware-backed versions when available.
var (
	kernelSqrt32 = sqrt32Portable
	kernelSqrt64 = sqrt64Portable
)

// Sqrt32 returns the correctly rounded single-precision square root of x.
// Negative inputs return NaN.
func Sqrt32(x float32) float32 {
	return kernelSqrt32(x)
}

// Sqrt64 returns the correctly rounded double-precision square root of x.
// Negative inputs return NaN.
func Sqrt64(x float64) float64 {
	return kernelSqrt64(x)
}

func sqrt32Hardware(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func sqrt64Hardware(x float64) float64 {
	return math.Sqrt(x)
}

func sqrt32Portable(x float32) float32 {
	// Rounding a correctly rounded double result to single precision is
	// itself correctly rounded: binary64 holds more than twice the
	// binary32 mantissa width.
	return float32(sqrt64Portable(float64(x)))
}
