package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/node"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/script"
	"github.com/aretw0/arbor/pkg/serial"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	MachinePath string
	// Inputs are taken from the command line; when empty, Stdin is read one
	// integer per line.
	Inputs      []string
	JSON        bool
	Prompt      bool
	LogLevel    string
	MaxSteps    int
	MetricsFile string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run loads a machine and drives it with the configured inputs, writing one
// row per step to Stdout.
func Run(ctx context.Context, opts RunOptions) error {
	logger, err := createLogger(opts.Stderr, opts.LogLevel)
	if err != nil {
		return err
	}

	m, err := script.Load(opts.MachinePath)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}

	var printer serial.Observer = tui.NewStepPrinter(opts.Stdout)
	if opts.JSON {
		printer = newJSONObserver(opts.Stdout)
	}

	b, err := m.Build(serial.WithObserver(observability.Multi(
		printer,
		observability.Logging(logger, m.Name),
		metrics.Observer(m.Name),
	)))
	if err != nil {
		return err
	}

	var src *lineSource
	inputs := slices.Values([]int64(nil))
	if len(opts.Inputs) > 0 {
		values, err := parseInputs(opts.Inputs)
		if err != nil {
			return err
		}
		inputs = slices.Values(values)
	} else {
		src = newLineSource(opts.Stdin, opts.Stdout, opts.Prompt && !opts.JSON)
		inputs = src.Seq()
	}

	logger.Debug("run started", "machine", m.Name, "initial", b.Selector())
	out, runErr := arbor.DriveSeq(ctx, node.Erase[int64, script.Return, int64](b), inputs,
		arbor.WithLogger(logger),
		arbor.WithMaxSteps(opts.MaxSteps),
	)
	if runErr == nil && src != nil {
		runErr = src.Err()
	}
	logger.Info("run finished", "machine", m.Name, "steps", out.Steps, "done", out.Done)

	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			logger.Warn("failed to write metrics", "path", opts.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		return handleExecutionError(runErr)
	}
	if !out.Done && !opts.JSON && src != nil && opts.Prompt {
		fmt.Fprintln(opts.Stdout)
	}
	return nil
}
