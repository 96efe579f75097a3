package eval

import (
	"math"

	"github.com/hupe1980/fastsqrt/internal/bignum"
)

// AccuracyResult is the per-method outcome of the accuracy pass.
type AccuracyResult struct {
	Method string

	// MaxAbsError is the worst absolute deviation from the reference
	// across the input set.
	MaxAbsError float64

	// MaxRelError is the worst relative deviation, taken over inputs with
	// a non-zero reference root.
	MaxRelError float64

	// CorrectBits is the equivalent correct-mantissa-bit count derived
	// from MaxRelError, capped at the method's precision width.
	CorrectBits float64
}

// AccuracySample is one row of the per-input accuracy sweep: the
// reference root and every method's output, aligned with Methods order.
type AccuracySample struct {
	Input     float64
	Reference float64
	Outputs   []float64
}

// Accuracy sweeps the input set once per method, tracking the running
// maximum absolute and relative error against the reference root.
func (r *Runner) Accuracy() []AccuracyResult {
	results := make([]AccuracyResult, 0, len(r.methods))

	for _, m := range r.methods {
		res := AccuracyResult{Method: m.Name}

		for _, x := range r.inputs {
			truth := Reference(x)
			abs := math.Abs(m.Fn(x) - truth)

			if abs > res.MaxAbsError {
				res.MaxAbsError = abs
			}
			if truth != 0 {
				if rel := abs / truth; rel > res.MaxRelError {
					res.MaxRelError = rel
				}
			}
		}

		maxBits := float64(52)
		if m.SinglePrecision {
			maxBits = 23
		}
		res.CorrectBits = bignum.CorrectBits(res.MaxRelError, maxBits)

		r.logger.Debug("accuracy measured",
			"method", m.Name,
			"max_abs_error", res.MaxAbsError,
			"max_rel_error", res.MaxRelError,
		)

		results = append(results, res)
	}

	return results
}

// AccuracySamples returns the raw per-input sweep used by report
// frontends; the harness itself only consumes the maxima.
func (r *Runner) AccuracySamples() []AccuracySample {
	samples := make([]AccuracySample, 0, len(r.inputs))

	for _, x := range r.inputs {
		s := AccuracySample{
			Input:     x,
			Reference: Reference(x),
			Outputs:   make([]float64, 0, len(r.methods)),
		}
		for _, m := range r.methods {
			s.Outputs = append(s.Outputs, m.Fn(x))
		}
		samples = append(samples, s)
	}

	return samples
}
