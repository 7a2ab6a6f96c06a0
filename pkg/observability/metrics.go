package observability

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/pkg/serial"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for serial branches.
type Metrics struct {
	steps       *prometheus.CounterVec
	transitions *prometheus.CounterVec
	exits       *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. Collectors
// already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbor",
			Name:      "branch_steps_total",
			Help:      "Composite steps, by machine, active variant and applied action.",
		}, []string{"machine", "variant", "action"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbor",
			Name:      "branch_transitions_total",
			Help:      "Variant transitions, by machine, source and target variant.",
		}, []string{"machine", "from", "to"}),
		exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "arbor",
			Name:      "branch_exits_total",
			Help:      "Composite exits, by machine and the variant that was active.",
		}, []string{"machine", "variant"}),
	}

	var err error
	if m.steps, err = register(reg, m.steps); err != nil {
		return nil, err
	}
	if m.transitions, err = register(reg, m.transitions); err != nil {
		return nil, err
	}
	if m.exits, err = register(reg, m.exits); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return c, nil
}

// Observer returns an observer that counts events under the machine label.
func (m *Metrics) Observer(machine string) serial.Observer {
	return serial.ObserverFunc(func(e serial.Event) {
		m.steps.WithLabelValues(machine, e.From, e.Action.String()).Inc()
		switch e.Action {
		case serial.ActionTransition:
			m.transitions.WithLabelValues(machine, e.From, e.To).Inc()
		case serial.ActionExit:
			m.exits.WithLabelValues(machine, e.From).Inc()
		}
	})
}
