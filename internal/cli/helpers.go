package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/serial"
)

// createLogger configures the application logger. Logs go to w (Stderr) to
// stay apart from the step rows on Stdout.
func createLogger(w io.Writer, level string) (*slog.Logger, error) {
	if w == nil {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(w, lvl), nil
}

func parseInputs(args []string) ([]int64, error) {
	values := make([]int64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid input %q: %w", a, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// lineSource reads one integer per line. Blank lines are skipped and "exit"
// or "quit" end the input.
type lineSource struct {
	scanner *bufio.Scanner
	prompt  io.Writer
	err     error
}

func newLineSource(r io.Reader, w io.Writer, prompt bool) *lineSource {
	src := &lineSource{scanner: bufio.NewScanner(r)}
	if prompt {
		src.prompt = w
	}
	return src
}

// Seq yields parsed inputs until the reader is drained or a line fails to
// parse. The failure is reported by Err.
func (s *lineSource) Seq() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for {
			if s.prompt != nil {
				fmt.Fprint(s.prompt, "> ")
			}
			if !s.scanner.Scan() {
				s.err = s.scanner.Err()
				return
			}
			line := strings.TrimSpace(s.scanner.Text())
			switch line {
			case "":
				continue
			case "exit", "quit":
				return
			}
			v, err := strconv.ParseInt(line, 10, 64)
			if err != nil {
				s.err = fmt.Errorf("invalid input %q: %w", line, err)
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the read or parse error that stopped Seq, if any.
func (s *lineSource) Err() error {
	return s.err
}

type jsonEvent struct {
	Step    int    `json:"step"`
	Variant string `json:"variant"`
	Kind    string `json:"kind"`
	Action  string `json:"action"`
	To      string `json:"to,omitempty"`
	Value   any    `json:"value"`
}

// newJSONObserver writes every branch event as one NDJSON record.
func newJSONObserver(w io.Writer) serial.Observer {
	enc := json.NewEncoder(w)
	return serial.ObserverFunc(func(e serial.Event) {
		kind := "nonterminal"
		if e.Subterminal {
			kind = "terminal"
		}
		_ = enc.Encode(jsonEvent{
			Step:    e.Step,
			Variant: e.From,
			Kind:    kind,
			Action:  e.Action.String(),
			To:      e.To,
			Value:   e.Value,
		})
	})
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

// handleExecutionError drops interruptions so they exit 0.
func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}
