package bignum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	got, _ := Sqrt(NewFloat(2, 128)).Float64()
	assert.Equal(t, math.Sqrt(2), got)

	got, _ = Sqrt(NewFloat(1234.5678, 128)).Float64()
	assert.Equal(t, math.Sqrt(1234.5678), got)
}

func TestLog(t *testing.T) {
	got, _ := Log(NewFloat(math.E, 128)).Float64()
	assert.InDelta(t, 1.0, got, 1e-15)
}

func TestCorrectBits(t *testing.T) {
	assert.Equal(t, 52.0, CorrectBits(0, 52))
	assert.Equal(t, 23.0, CorrectBits(-1, 23))

	// 2^-10 relative error is exactly 10 correct bits.
	assert.InDelta(t, 10.0, CorrectBits(math.Pow(2, -10), 52), 1e-9)

	// Saturates at the precision width.
	assert.Equal(t, 23.0, CorrectBits(1e-30, 23))
}
