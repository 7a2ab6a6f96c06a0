package serial

import (
	"github.com/aretw0/arbor/pkg/enum"
)

// Choice is a nonterminal decision that carries no output of its own.
type Choice[E, X any] = NontermDecision[E, struct{}, X]

// TermChoice is a terminal decision that carries no output of its own.
type TermChoice[E, X any] = TermDecision[E, struct{}, X]

// SimpleDecider is the reduced policy: it sees only the selector and the
// subnode's value, and the Branch reports the subnode's value unchanged.
type SimpleDecider[E comparable, N, T, X any] interface {
	OnNonterminal(sel E, n N) Choice[E, X]
	OnTerminal(sel E, t T) TermChoice[E, X]
}

// Choices builds Choice and TermChoice values. Its zero value is ready to use.
type Choices[E, X any] struct{}

// Step keeps stepping the active variant.
func (Choices[E, X]) Step() Choice[E, X] {
	return Step[E, struct{}, X](struct{}{})
}

// Transition starts target fresh.
func (Choices[E, X]) Transition(target E) Choice[E, X] {
	return Transition[E, struct{}, X](target, struct{}{})
}

// Exit ends the composite with x.
func (Choices[E, X]) Exit(x X) Choice[E, X] {
	return Exit[E, struct{}](x)
}

// TermTransition starts target fresh after the variant finished.
func (Choices[E, X]) TermTransition(target E) TermChoice[E, X] {
	return TermTransition[E, struct{}, X](target, struct{}{})
}

// TermExit ends the composite with x after the variant finished.
func (Choices[E, X]) TermExit(x X) TermChoice[E, X] {
	return TermExit[E, struct{}](x)
}

// Reduce lifts a SimpleDecider into a Decider that ignores the input and
// echoes the subnode's value as the composite's output.
func Reduce[E comparable, I, N, T, X any](s SimpleDecider[E, N, T, X]) Decider[E, I, N, T, X] {
	return reduced[E, I, N, T, X]{simple: s}
}

type reduced[E comparable, I, N, T, X any] struct {
	simple SimpleDecider[E, N, T, X]
}

func (r reduced[E, I, N, T, X]) OnNonterminal(_ I, sel E, n N) NontermDecision[E, N, X] {
	c := r.simple.OnNonterminal(sel, n)
	switch c.action {
	case ActionStep:
		return Step[E, N, X](n)
	case ActionTransition:
		return Transition[E, N, X](c.target, n)
	default:
		return Exit[E, N](c.exit)
	}
}

func (r reduced[E, I, N, T, X]) OnTerminal(_ I, sel E, t T) TermDecision[E, T, X] {
	c := r.simple.OnTerminal(sel, t)
	if c.exit {
		return TermExit[E, T](c.value)
	}
	return TermTransition[E, T, X](c.target, t)
}

// NewHomogeneous creates a Branch driven by a SimpleDecider.
func NewHomogeneous[E comparable, I, N, T, X any](
	decider SimpleDecider[E, N, T, X],
	set enum.Enumeration[E, I, N, T],
	sel E,
	opts ...Option,
) Branch[E, I, N, T, X] {
	return New(Reduce[E, I](decider), set, sel, opts...)
}
