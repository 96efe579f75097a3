package hwsqrt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sweepValues() []float64 {
	// Log-spaced sweep plus awkward mantissas.
	values := []float64{0.25, 0.5, 1, 2, 3, 4, 16, 100, 1234.5678, 0.1}
	for e := -10; e <= 10; e += 2 {
		values = append(values, math.Pow(10, float64(e)))
	}
	return values
}

func TestSqrt64PortableMatchesMath(t *testing.T) {
	for _, x := range sweepValues() {
		require.Equal(t,
			math.Float64bits(math.Sqrt(x)),
			math.Float64bits(sqrt64Portable(x)),
			"x=%v", x)
	}
}

func TestSqrt64PortableSpecials(t *testing.T) {
	assert.Equal(t, 0.0, sqrt64Portable(0))
	assert.True(t, math.IsNaN(sqrt64Portable(-1)))
	assert.True(t, math.IsNaN(sqrt64Portable(math.NaN())))
	assert.True(t, math.IsInf(sqrt64Portable(math.Inf(1)), 1))

	// Subnormal input still rounds correctly.
	tiny := math.SmallestNonzeroFloat64
	assert.Equal(t, math.Sqrt(tiny), sqrt64Portable(tiny))
}

func TestSqrt32KernelsAgree(t *testing.T) {
	for _, x := range sweepValues() {
		f := float32(x)
		want := float32(math.Sqrt(float64(f)))
		assert.Equal(t, want, sqrt32Portable(f), "portable x=%v", x)
		assert.Equal(t, want, sqrt32Hardware(f), "hardware x=%v", x)
		assert.Equal(t, want, Sqrt32(f), "dispatched x=%v", x)
	}
}

func TestSqrt64Dispatch(t *testing.T) {
	for _, x := range sweepValues() {
		assert.Equal(t, math.Sqrt(x), Sqrt64(x), "x=%v", x)
	}
}

func TestRSqrt32AccuracyClass(t *testing.T) {
	// The estimate must stay within the documented class of the hardware
	// fast-reciprocal instruction.
	const maxRel = 2e-3

	for _, x := range sweepValues() {
		f := float32(x)
		truth := 1 / math.Sqrt(float64(f))
		rel := math.Abs(float64(RSqrt32(f))-truth) / truth
		assert.LessOrEqual(t, rel, maxRel, "x=%v", x)
	}
}

func TestRSqrt32Specials(t *testing.T) {
	assert.True(t, math.IsInf(float64(RSqrt32(0)), 1))
	assert.True(t, math.IsNaN(float64(RSqrt32(-4))))
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
		ok   bool
	}{
		{"portable", Portable, true},
		{"hardware", Hardware, true},
		{" Hardware ", Hardware, true},
		{"sse", Portable, false},
		{"", Portable, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseBackend(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "portable", Portable.String())
	assert.Equal(t, "hardware", Hardware.String())
	assert.Equal(t, "unknown", Backend(7).String())
}

func TestActiveBackendIsAvailable(t *testing.T) {
	assert.True(t, isBackendAvailable(ActiveBackend()))
}

func TestSelectBackendSwapsKernels(t *testing.T) {
	// Restore whatever init picked.
	defer selectBackend(activeBackend)

	selectBackend(Portable)
	assert.Equal(t, Portable, ActiveBackend())
	assert.Equal(t, math.Sqrt(2), Sqrt64(2))

	if HasHardwareSqrt() {
		selectBackend(Hardware)
		assert.Equal(t, Hardware, ActiveBackend())
		assert.Equal(t, math.Sqrt(2), Sqrt64(2))
	}
}
