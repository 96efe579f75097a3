package eval

import (
	"math"
	"slices"

	"github.com/hupe1980/fastsqrt"
	"github.com/hupe1980/fastsqrt/internal/hwsqrt"
)

// Default harness tuning.
const (
	// DefaultIterations is the throughput-pass call count per method.
	DefaultIterations = 10_000_000

	// DefaultRepeats is the number of timed loops per method.
	DefaultRepeats = 1

	// speedInputCount is the size of the cyclic throughput input buffer.
	speedInputCount = 1000
)

// Method is one square-root implementation under measurement.
type Method struct {
	// Name is the display name used in reports.
	Name string

	// Fn adapts the implementation to a common float64 signature.
	// Single-precision methods convert at the call boundary.
	Fn func(float64) float64

	// SinglePrecision marks reduced-precision (float32) methods, which
	// caps their achievable correct-bits accounting at the binary32
	// mantissa width.
	SinglePrecision bool
}

// Reference is the trusted square root the passes compare against.
func Reference(x float64) float64 {
	return math.Sqrt(x)
}

// Methods returns the fixed method set in report order.
func Methods() []Method {
	return []Method{
		{Name: "newton", Fn: fastsqrt.SqrtNewton},
		{Name: "bisect", Fn: fastsqrt.SqrtBisect},
		{Name: "rsqrt", Fn: f32(fastsqrt.SqrtRSqrt), SinglePrecision: true},
		{Name: "bithack", Fn: f32(fastsqrt.SqrtBithack), SinglePrecision: true},
		{Name: "hardware", Fn: f32(fastsqrt.SqrtHardware), SinglePrecision: true},
		{Name: "optimal", Fn: fastsqrt.SqrtOptimal},
	}
}

func f32(fn func(float32) float32) func(float64) float64 {
	return func(x float64) float64 {
		return float64(fn(float32(x)))
	}
}

// ActiveBackend reports which square-root backend the primitive layer
// selected at startup ("hardware" or "portable").
func ActiveBackend() string {
	return hwsqrt.ActiveBackend().String()
}

// DefaultAccuracyInputs returns the fixed ordered accuracy-pass input set.
func DefaultAccuracyInputs() []float64 {
	return []float64{0, 0.25, 1, 2, 4, 16, 100, 1234.5678, 1e-10, 1e-5, 1e5, 1e10}
}

// Runner drives the accuracy and throughput passes over the fixed method
// set. A Runner is immutable after construction and safe for sequential
// reuse; measurements are deliberately sequential so wall-clock figures
// stay comparable.
type Runner struct {
	iterations int
	repeats    int
	inputs     []float64
	logger     *Logger
	methods    []Method
}

// NewRunner validates the options and builds a Runner.
func NewRunner(optFns ...Option) (*Runner, error) {
	opts := options{
		iterations: DefaultIterations,
		repeats:    DefaultRepeats,
		inputs:     DefaultAccuracyInputs(),
		logger:     NoopLogger(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.iterations <= 0 {
		return nil, &ErrInvalidIterations{Iterations: opts.iterations}
	}
	if opts.repeats <= 0 {
		return nil, &ErrInvalidRepeats{Repeats: opts.repeats}
	}
	if len(opts.inputs) == 0 {
		return nil, ErrNoInputs
	}

	opts.logger.Debug("runner ready",
		"backend", ActiveBackend(),
		"iterations", opts.iterations,
		"repeats", opts.repeats,
	)

	return &Runner{
		iterations: opts.iterations,
		repeats:    opts.repeats,
		inputs:     slices.Clone(opts.inputs),
		logger:     opts.logger,
		methods:    Methods(),
	}, nil
}
