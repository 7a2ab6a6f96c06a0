package observability

import (
	"log/slog"

	"github.com/aretw0/arbor/pkg/serial"
)

// Hooks dispatches branch events to per-action callbacks. Nil callbacks are
// skipped.
type Hooks struct {
	OnStep       func(serial.Event)
	OnTransition func(serial.Event)
	OnExit       func(serial.Event)
}

// Observe implements serial.Observer.
func (h Hooks) Observe(e serial.Event) {
	var fn func(serial.Event)
	switch e.Action {
	case serial.ActionStep:
		fn = h.OnStep
	case serial.ActionTransition:
		fn = h.OnTransition
	case serial.ActionExit:
		fn = h.OnExit
	}
	if fn != nil {
		fn(e)
	}
}

// Multi fans every event out to each observer in order.
func Multi(observers ...serial.Observer) serial.Observer {
	return serial.ObserverFunc(func(e serial.Event) {
		for _, o := range observers {
			if o != nil {
				o.Observe(e)
			}
		}
	})
}

// Logging returns an observer that records decisions on logger. Steps are
// logged at Debug, transitions and exits at Info.
func Logging(logger *slog.Logger, machine string) serial.Observer {
	return serial.ObserverFunc(func(e serial.Event) {
		attrs := []any{
			"machine", machine,
			"step", e.Step,
			"from", e.From,
			"subterminal", e.Subterminal,
			"value", e.Value,
		}
		switch e.Action {
		case serial.ActionStep:
			logger.Debug("branch step", attrs...)
		case serial.ActionTransition:
			logger.Info("branch transition", append(attrs, "to", e.To)...)
		default:
			logger.Info("branch exit", attrs...)
		}
	})
}
