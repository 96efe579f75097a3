//go:build arm64

package hwsqrt

func init() {
	// FSQRT is part of the arm64 baseline FP instruction set, so no
	// feature probe is needed (and darwin feature probing is unreliable).
	hasHWSqrt = true
	initCapabilities()
}
