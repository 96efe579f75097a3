package eval

type options struct {
	iterations int
	repeats    int
	inputs     []float64
	logger     *Logger
}

// Option configures Runner construction.
type Option func(*options)

// WithIterations sets the number of calls per method in the throughput
// pass. The default is DefaultIterations; values this large keep timer
// resolution noise negligible relative to the measured loop.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithRepeats sets how many times the timed loop runs per method. With
// more than one repeat, the throughput results carry mean/median/stddev
// summaries over the per-repeat samples and the headline elapsed time is
// the median.
func WithRepeats(n int) Option {
	return func(o *options) {
		o.repeats = n
	}
}

// WithInputs replaces the accuracy-pass input set. The default set spans
// the edge cases: zero, fractions, unity, small and large integers,
// non-round decimals, and extreme magnitudes.
func WithInputs(values []float64) Option {
	return func(o *options) {
		o.inputs = values
	}
}

// WithLogger sets the harness logger. If nil is passed, logging is
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
