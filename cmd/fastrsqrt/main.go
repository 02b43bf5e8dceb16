// Command fastrsqrt runs rsqrt.FastRsqrt over a set of inputs and reports
// the error of each result against the ideal value, along with the time
// spent in each call.
//
// Usage:
//
//	fastrsqrt [-j N] [-log-level L] [-log-format text|json] [x ...]
//
// Without arguments the inputs are rsqrt.DefaultInputs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shogo82148/rsqrt"
)

type config struct {
	jobs      int
	logLevel  slog.Level
	logFormat string
	inputs    []uint32
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := newLogger(os.Stderr, cfg.logLevel, cfg.logFormat)
	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	fs := flag.NewFlagSet("fastrsqrt", flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &config{}
	fs.IntVar(&cfg.jobs, "j", 1, "number of inputs evaluated concurrently")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelInfo, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format (text or json)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.jobs < 1 {
		return nil, fmt.Errorf("invalid -j %d: must be at least 1", cfg.jobs)
	}
	switch cfg.logFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid -log-format %q", cfg.logFormat)
	}

	inputs, err := parseInputs(fs.Args())
	if err != nil {
		return nil, err
	}
	cfg.inputs = inputs
	return cfg, nil
}

// parseInputs parses decimal, hex (0x), octal (0o) or binary (0b) values.
func parseInputs(args []string) ([]uint32, error) {
	if len(args) == 0 {
		return append([]uint32(nil), rsqrt.DefaultInputs...), nil
	}
	inputs := make([]uint32, 0, len(args))
	for _, arg := range args {
		x, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid input %q: %w", arg, err)
		}
		inputs = append(inputs, uint32(x))
	}
	return inputs, nil
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// measurement is one timed call of rsqrt.FastRsqrt.
type measurement struct {
	result  rsqrt.Result
	elapsed time.Duration
}

func measure(x uint32) measurement {
	start := time.Now()
	y := rsqrt.FastRsqrt(x)
	elapsed := time.Since(start)

	r := rsqrt.Evaluate(x)
	r.Y = y
	return measurement{result: r, elapsed: elapsed}
}

func run(ctx context.Context, cfg *config, w io.Writer, logger *slog.Logger) error {
	start := time.Now()
	logger.Info("starting", "inputs", len(cfg.inputs), "jobs", cfg.jobs)

	results := make([]measurement, len(cfg.inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)
	for i, x := range cfg.inputs {
		i, x := i, x
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = measure(x)
			logger.Debug("evaluated", "x", x, "y", results[i].result.Y, "elapsed", results[i].elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("evaluating inputs: %w", err)
	}

	if err := writeReport(w, results); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	overhead := time.Since(start)
	if _, err := fmt.Fprintf(w, "\nIncluding test framework overhead:\n  Time: %v\n=== fast_rsqrt test finished ===\n", overhead); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("finished", "elapsed", overhead)
	return nil
}

func writeReport(w io.Writer, results []measurement) error {
	bw := &errWriter{w: w}
	fmt.Fprint(bw, "\nfast_rsqrt test\n")
	fmt.Fprint(bw, "Each error% is computed using integer math; remainder reveals\n")
	fmt.Fprint(bw, "how much precision is lost by division.\n\n")

	var total time.Duration
	for _, m := range results {
		total += m.elapsed
		fmt.Fprintf(bw, "  %s\n", m.result)
		fmt.Fprintf(bw, "    value: %v, elapsed: %v\n", m.result.Value(), m.elapsed)
	}

	fmt.Fprint(bw, "\nSummary for fast_rsqrt:\n")
	fmt.Fprintf(bw, "  Total time: %v\n", total)
	return bw.err
}

// errWriter remembers the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.err = err
	return n, err
}
