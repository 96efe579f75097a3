//go:build !amd64 && !arm64

package hwsqrt

import "runtime"

func init() {
	// GOARCHs known to intrinsify math.Sqrt to a native instruction.
	switch runtime.GOARCH {
	case "386", "ppc64", "ppc64le", "s390x", "riscv64", "wasm":
		hasHWSqrt = true
	}
	initCapabilities()
}
