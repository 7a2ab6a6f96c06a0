package serial

// Event describes one decision applied by a Branch.
type Event struct {
	// Step counts the steps taken since the Branch was created, from 1.
	Step int
	// From is the selector active before the step.
	From string
	// To is the selector active after the step; empty on exit.
	To string
	// Action is the decision that was applied.
	Action Action
	// Subterminal is set when the subnode itself went terminal.
	Subterminal bool
	// Value is the output reported by the decision, or the exit value.
	Value any
}

// Observer receives an Event for every step of a Branch. Observe runs
// synchronously inside Step and must not step the Branch.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

type options struct {
	observer Observer
}

// Option configures a Branch.
type Option func(*options)

// WithObserver attaches an Observer. It is carried into every continuation.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}
