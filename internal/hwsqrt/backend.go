// Package hwsqrt provides the square-root primitives behind a
// capability-checked backend: the hardware single-instruction root where
// the platform has one, a portable bit-by-bit kernel otherwise.
//
// The fast reciprocal-root estimate has no pure Go route to the dedicated
// hardware instruction, so RSqrt32 is always the software approximation in
// the same accuracy class; see rsqrt.go for the performance caveat.
//
// Set FASTSQRT_BACKEND=portable (or =hardware) to override auto-detection.
package hwsqrt

import (
	"os"
	"strings"
)

// Backend identifies which exact-root kernel implementation is active.
type Backend uint8

const (
	// Portable is the pure Go bit-by-bit implementation.
	Portable Backend = iota
	// Hardware rides math.Sqrt, which the compiler lowers to the
	// single-instruction root (SQRTSD on amd64, FSQRT on arm64).
	Hardware
)

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case Portable:
		return "portable"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portable":
		return Portable, true
	case "hardware":
		return Hardware, true
	default:
		return Portable, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeBackend is the selected kernel implementation.
	activeBackend Backend

	// hasOverride is true if FASTSQRT_BACKEND was set.
	hasOverride bool

	// hasHWSqrt is set by the platform-specific init when the GOARCH
	// intrinsifies math.Sqrt to a hardware instruction.
	hasHWSqrt bool
)

// initCapabilities is called from platform-specific init functions after
// CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("FASTSQRT_BACKEND"); override != "" {
		if b, ok := ParseBackend(override); ok {
			hasOverride = true
			// Validate the override is available
			if isBackendAvailable(b) {
				selectBackend(b)
				return
			}
			// Invalid override - fall through to auto-detection
		}
	}

	selectBackend(bestBackend())
}

// isBackendAvailable checks if a backend is supported on this platform.
func isBackendAvailable(b Backend) bool {
	switch b {
	case Portable:
		return true
	case Hardware:
		return hasHWSqrt
	default:
		return false
	}
}

func bestBackend() Backend {
	if hasHWSqrt {
		return Hardware
	}
	return Portable
}

func selectBackend(b Backend) {
	activeBackend = b
	switch b {
	case Hardware:
		kernelSqrt32 = sqrt32Hardware
		kernelSqrt64 = sqrt64Hardware
	default:
		kernelSqrt32 = sqrt32Portable
		kernelSqrt64 = sqrt64Portable
	}
}

// ActiveBackend returns the currently active backend.
func ActiveBackend() Backend {
	return activeBackend
}

// IsOverridden returns true if FASTSQRT_BACKEND was set.
func IsOverridden() bool {
	return hasOverride
}

// HasHardwareSqrt returns true if math.Sqrt lowers to a hardware
// instruction on this platform.
func HasHardwareSqrt() bool {
	return hasHWSqrt
}
