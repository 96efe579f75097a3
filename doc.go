// Package fastsqrt implements competing square-root approximation
// strategies with documented accuracy/speed tradeoffs.
//
// # Methods
//
//   - SqrtNewton: Newton-Raphson refinement from a naive seed (x itself)
//   - SqrtBisect: interval bisection, the slow linear-convergence baseline
//   - SqrtRSqrt: reciprocal-root estimate plus one refinement round
//   - SqrtBithack: IEEE-754 bit-pattern seed plus two refinement rounds
//   - SqrtHardware: the single-instruction exact root
//   - SqrtOptimal: double-precision bit-pattern seed plus two rounds
//
// All methods share the same edge policy: negative inputs return NaN,
// zero returns exactly zero. Every call is a pure evaluation with no
// shared state, so the functions are safe for concurrent use.
//
// The exact and reciprocal primitives live behind a capability-checked
// backend in internal/hwsqrt; set FASTSQRT_BACKEND=portable to force the
// pure Go fallback.
//
// The eval package measures worst-case error and throughput of every
// method against math.Sqrt.
package fastsqrt
