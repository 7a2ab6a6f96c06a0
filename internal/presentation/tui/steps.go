package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/arbor/pkg/serial"
	"github.com/muesli/termenv"
)

// StepPrinter writes one row per branch event as "selector kind value".
// Rows where the variant went terminal are highlighted, exits are bold.
type StepPrinter struct {
	w   io.Writer
	out *termenv.Output
}

// NewStepPrinter returns a StepPrinter writing to w. Colours are only used
// when w is a terminal.
func NewStepPrinter(w io.Writer) *StepPrinter {
	return &StepPrinter{w: w, out: termenv.NewOutput(w)}
}

// Observe implements serial.Observer.
func (p *StepPrinter) Observe(e serial.Event) {
	fmt.Fprintln(p.w, p.Row(e))
}

// Row formats e without writing it.
func (p *StepPrinter) Row(e serial.Event) string {
	kind := "nonterminal"
	if e.Subterminal {
		kind = "terminal"
	}
	if e.Action == serial.ActionExit {
		kind = "exit"
	}
	row := fmt.Sprintf("%s %s %v", e.From, kind, e.Value)
	if p.out.Profile == termenv.Ascii {
		return row
	}

	switch {
	case e.Action == serial.ActionExit:
		return p.out.String(row).Bold().Foreground(p.out.Color("#fb7185")).String()
	case e.Subterminal:
		return p.out.String(row).Foreground(p.out.Color("#fbbf24")).String()
	case e.Action == serial.ActionTransition:
		return p.out.String(row).Foreground(p.out.Color("#22d3ee")).String()
	}
	return row
}
