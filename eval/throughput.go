package eval

import (
	"time"

	"github.com/montanaflynn/stats"
)

// sink keeps the timed calls observable. Writing every result to a
// package-level variable is the Go analogue of the volatile write that
// guards native benchmarks against dead-code elimination.
var sink float64

// ReferenceMethodName labels the reference row in throughput results.
const ReferenceMethodName = "reference"

// ThroughputResult is the per-method outcome of the throughput pass.
type ThroughputResult struct {
	Method string

	// Elapsed is the wall-clock time of one full timed loop. With
	// repeats, it is the median sample.
	Elapsed time.Duration

	// NsPerOp is Elapsed divided by the iteration count.
	NsPerOp float64

	// Speedup is referenceElapsed/methodElapsed: above 1 means faster
	// than the reference. The reference row is exactly 1.
	Speedup float64

	// MeanMs, MedianMs and StdDevMs summarize the per-repeat elapsed
	// samples in milliseconds. With a single repeat, stddev is zero.
	MeanMs   float64
	MedianMs float64
	StdDevMs float64
}

// Throughput times every method over a large repeated-call workload,
// cycling through a precomputed input buffer by index. The reference is
// measured first and heads the result slice.
func (r *Runner) Throughput() []ThroughputResult {
	// Fixed-size cyclic buffer, allocated once before any timing starts.
	data := make([]float64, speedInputCount)
	for i := range data {
		data[i] = 0.1 + float64(i)*0.01
	}

	results := make([]ThroughputResult, 0, len(r.methods)+1)
	results = append(results, r.measure(ReferenceMethodName, Reference, data))

	refElapsed := results[0].Elapsed
	results[0].Speedup = 1

	for _, m := range r.methods {
		res := r.measure(m.Name, m.Fn, data)
		if res.Elapsed > 0 {
			res.Speedup = float64(refElapsed) / float64(res.Elapsed)
		}
		results = append(results, res)
	}

	return results
}

func (r *Runner) measure(name string, fn func(float64) float64, data []float64) ThroughputResult {
	samples := make([]float64, 0, r.repeats)

	for rep := 0; rep < r.repeats; rep++ {
		start := time.Now()
		for i := 0; i < r.iterations; i++ {
			sink = fn(data[i%len(data)])
		}
		elapsed := time.Since(start)
		samples = append(samples, float64(elapsed.Nanoseconds())/1e6)
	}

	mean, _ := stats.Mean(samples)
	median, _ := stats.Median(samples)
	stddev, _ := stats.StandardDeviation(samples)

	elapsed := time.Duration(median * float64(time.Millisecond))

	r.logger.Debug("throughput measured",
		"method", name,
		"elapsed", elapsed,
		"repeats", r.repeats,
	)

	return ThroughputResult{
		Method:   name,
		Elapsed:  elapsed,
		NsPerOp:  float64(elapsed.Nanoseconds()) / float64(r.iterations),
		MeanMs:   mean,
		MedianMs: median,
		StdDevMs: stddev,
	}
}
