// Package eval is the measurement harness for the fastsqrt approximators.
//
// It runs two independent read-only passes over the fixed method set:
// an accuracy pass tracking the worst-case error of every method against
// math.Sqrt, and a throughput pass timing a large repeated-call workload
// per method with a sink write that keeps the compiler from eliding the
// loop. Both passes are single-threaded and deterministic apart from
// timer noise.
package eval
