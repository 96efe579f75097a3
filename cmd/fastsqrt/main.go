// Command fastsqrt runs the full approximation report: a quick
// validation, the accuracy sweep, and the throughput comparison against
// math.Sqrt. Invoked bare it uses the default harness tuning.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/fastsqrt"
	"github.com/hupe1980/fastsqrt/eval"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		iterations int
		repeats    int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "fastsqrt",
		Short:         "Benchmark square-root approximation methods against math.Sqrt",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			runner, err := eval.NewRunner(
				eval.WithIterations(iterations),
				eval.WithRepeats(repeats),
				eval.WithLogger(eval.NewTextLogger(level)),
			)
			if err != nil {
				return err
			}

			report(cmd.OutOrStdout(), runner, iterations)
			return nil
		},
	}

	cmd.Flags().IntVar(&iterations, "iterations", eval.DefaultIterations, "calls per method in the throughput pass")
	cmd.Flags().IntVar(&repeats, "repeats", eval.DefaultRepeats, "timed repetitions per method")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func report(w io.Writer, runner *eval.Runner, iterations int) {
	fmt.Fprintf(w, "square-root approximation report (backend: %s)\n\n", eval.ActiveBackend())

	fmt.Fprintln(w, "quick validation:")
	fmt.Fprintf(w, "  rsqrt(4)     = %v (want 2)\n", fastsqrt.SqrtRSqrt(4))
	fmt.Fprintf(w, "  bithack(16)  = %v (want 4)\n", fastsqrt.SqrtBithack(16))
	fmt.Fprintf(w, "  optimal(2)   = %v (want ~1.414)\n", fastsqrt.SqrtOptimal(2))
	fmt.Fprintf(w, "  hardware(100)= %v (want 10)\n\n", fastsqrt.SqrtHardware(100))

	methods := eval.Methods()

	fmt.Fprintln(w, "accuracy:")
	fmt.Fprintf(w, "  %14s %14s", "value", "reference")
	for _, m := range methods {
		fmt.Fprintf(w, " %14s", m.Name)
	}
	fmt.Fprintln(w)
	for _, s := range runner.AccuracySamples() {
		fmt.Fprintf(w, "  %14.4e %14.4e", s.Input, s.Reference)
		for _, out := range s.Outputs {
			fmt.Fprintf(w, " %14.4e", out)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nmaximum errors:")
	for _, res := range runner.Accuracy() {
		fmt.Fprintf(w, "  %-10s abs %.4e  rel %.4e  (%.1f correct bits)\n",
			res.Method, res.MaxAbsError, res.MaxRelError, res.CorrectBits)
	}

	fmt.Fprintf(w, "\nthroughput (%d calls per method):\n", iterations)
	for _, res := range runner.Throughput() {
		fmt.Fprintf(w, "  %-10s %10v  %8.2f ns/op  %6.2fx\n",
			res.Method, res.Elapsed, res.NsPerOp, res.Speedup)
	}
}
