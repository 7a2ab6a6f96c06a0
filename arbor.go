package arbor

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/node"
)

// ErrStepLimit is returned when Drive reaches the limit set by WithMaxSteps.
var ErrStepLimit = errors.New("step limit reached")

// Outcome is what a drive loop observed.
type Outcome[I, N, T any] struct {
	// Trace holds every nonterminal output in order.
	Trace []N
	// Terminal is the terminal output; valid only when Done.
	Terminal T
	// Done is set once the behavior has gone terminal.
	Done bool
	// Next is the live continuation when the inputs ran out first. It is nil
	// once Done, since a terminated behavior cannot be stepped again.
	Next node.Behavior[I, N, T]
	// Steps counts the Step calls made.
	Steps int
}

type config struct {
	logger   *slog.Logger
	maxSteps int
}

// Option configures a drive loop.
type Option func(*config)

// WithLogger sets a structured logger for step-level debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxSteps bounds the number of steps; zero means unbounded.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
	}
}

// Drive steps b once per input, in order, until b goes terminal or the inputs
// run out.
func Drive[I, N, T any](ctx context.Context, b node.Behavior[I, N, T], inputs []I, opts ...Option) (Outcome[I, N, T], error) {
	return DriveSeq(ctx, b, slices.Values(inputs), opts...)
}

// DriveSeq is Drive over an input sequence. The sequence is not consumed past
// the input that made b terminal.
func DriveSeq[I, N, T any](ctx context.Context, b node.Behavior[I, N, T], inputs iter.Seq[I], opts ...Option) (Outcome[I, N, T], error) {
	cfg := config{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	out := Outcome[I, N, T]{Next: b}
	for input := range inputs {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("drive stopped after %d steps: %w", out.Steps, err)
		}
		if cfg.maxSteps > 0 && out.Steps >= cfg.maxSteps {
			return out, fmt.Errorf("%w: %d", ErrStepLimit, cfg.maxSteps)
		}

		r := out.Next.Step(input)
		out.Steps++

		if n, next, ok := r.Next(); ok {
			out.Trace = append(out.Trace, n)
			out.Next = next
			cfg.logger.Debug("step", "index", out.Steps, "output", n)
			continue
		}

		out.Terminal, _ = r.Terminal()
		out.Done = true
		out.Next = nil
		cfg.logger.Debug("terminal", "index", out.Steps, "output", out.Terminal)
		break
	}
	return out, nil
}
