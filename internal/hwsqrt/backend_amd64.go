//go:build amd64

package hwsqrt

import "golang.org/x/sys/cpu"

func init() {
	// SSE2 is the amd64 baseline and carries SQRTSD/SQRTSS; math.Sqrt is
	// intrinsified whenever it is present.
	hasHWSqrt = cpu.X86.HasSSE2
	initCapabilities()
}
