package serial

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/enum"
	"github.com/aretw0/arbor/pkg/node"
)

// Branch is the serial branch composite node.
type Branch[E comparable, I, N, T, X any] struct {
	node     enum.Enumerated[E, I, N, T]
	set      enum.Enumeration[E, I, N, T]
	decider  Decider[E, I, N, T, X]
	observer Observer
	steps    int
}

// New creates a Branch running a fresh instance of variant sel.
func New[E comparable, I, N, T, X any](
	decider Decider[E, I, N, T, X],
	set enum.Enumeration[E, I, N, T],
	sel E,
	opts ...Option,
) Branch[E, I, N, T, X] {
	return FromExisting(decider, set, enum.Construct(set, sel), opts...)
}

// FromExisting creates a Branch around an already-live enumerated node.
// set is still needed to construct variants on transition.
func FromExisting[E comparable, I, N, T, X any](
	decider Decider[E, I, N, T, X],
	set enum.Enumeration[E, I, N, T],
	existing enum.Enumerated[E, I, N, T],
	opts ...Option,
) Branch[E, I, N, T, X] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return Branch[E, I, N, T, X]{
		node:     existing,
		set:      set,
		decider:  decider,
		observer: o.observer,
	}
}

// NewDefault creates a Branch at the table's first variant.
func NewDefault[E comparable, I, N, T, X any](
	decider Decider[E, I, N, T, X],
	table *enum.Table[E, I, N, T],
	opts ...Option,
) Branch[E, I, N, T, X] {
	return New[E, I, N, T, X](decider, table, table.Default(), opts...)
}

// Selector reports the active variant.
func (b Branch[E, I, N, T, X]) Selector() E {
	return b.node.Selector()
}

// Step advances the active variant and applies the Decider's choice.
func (b Branch[E, I, N, T, X]) Step(input I) node.Result[Return[E, N, T], X, Branch[E, I, N, T, X]] {
	sel := b.node.Selector()
	r := b.node.Step(input)

	if n, next, ok := r.Next(); ok {
		d := b.decider.OnNonterminal(input, sel, n)
		switch d.action {
		case ActionStep:
			cont := b.advance(next)
			b.notify(sel, cont.Selector(), d.action, false, d.out)
			return node.Nonterminal[Return[E, N, T], X](FromNonterminal[E, N, T](sel, d.out), cont)
		case ActionTransition:
			cont := b.advance(enum.Construct(b.set, d.target))
			b.notify(sel, cont.Selector(), d.action, false, d.out)
			return node.Nonterminal[Return[E, N, T], X](FromNonterminal[E, N, T](sel, d.out), cont)
		default:
			b.notifyExit(sel, false, d.exit)
			return node.Terminal[Return[E, N, T], X, Branch[E, I, N, T, X]](d.exit)
		}
	}

	t, _ := r.Terminal()
	d := b.decider.OnTerminal(input, sel, t)
	if d.exit {
		b.notifyExit(sel, true, d.value)
		return node.Terminal[Return[E, N, T], X, Branch[E, I, N, T, X]](d.value)
	}
	cont := b.advance(enum.Construct(b.set, d.target))
	b.notify(sel, cont.Selector(), ActionTransition, true, d.out)
	return node.Nonterminal[Return[E, N, T], X](FromTerminal[E, N](sel, d.out), cont)
}

// advance builds the continuation around n, keeping set, decider and observer.
func (b Branch[E, I, N, T, X]) advance(n enum.Enumerated[E, I, N, T]) Branch[E, I, N, T, X] {
	return Branch[E, I, N, T, X]{
		node:     n,
		set:      b.set,
		decider:  b.decider,
		observer: b.observer,
		steps:    b.steps + 1,
	}
}

func (b Branch[E, I, N, T, X]) notify(from, to E, action Action, subterminal bool, value any) {
	if b.observer == nil {
		return
	}
	b.observer.Observe(Event{
		Step:        b.steps + 1,
		From:        fmt.Sprint(from),
		To:          fmt.Sprint(to),
		Action:      action,
		Subterminal: subterminal,
		Value:       value,
	})
}

func (b Branch[E, I, N, T, X]) notifyExit(from E, subterminal bool, value any) {
	if b.observer == nil {
		return
	}
	b.observer.Observe(Event{
		Step:        b.steps + 1,
		From:        fmt.Sprint(from),
		Action:      ActionExit,
		Subterminal: subterminal,
		Value:       value,
	})
}
