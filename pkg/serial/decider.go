package serial

import "fmt"

// Decider is the policy a Branch consults once per step, after the active
// subnode has been stepped. It receives the step's input, the selector that
// was active before the step, and the raw subnode value.
//
// A Decider must be total over every selector and value the enumerated set
// can produce. The same Decider value is carried into every continuation of
// a Branch; one that keeps state behind a pointer shares it with them.
type Decider[E comparable, I, N, T, X any] interface {
	OnNonterminal(input I, sel E, n N) NontermDecision[E, N, X]
	OnTerminal(input I, sel E, t T) TermDecision[E, T, X]
}

// DeciderFuncs adapts two functions into a Decider. A nil Nonterminal
// always steps with the subnode's value. Terminal must be set: there is no
// sensible default once a variant finishes, so OnTerminal panics without it.
type DeciderFuncs[E comparable, I, N, T, X any] struct {
	Nonterminal func(input I, sel E, n N) NontermDecision[E, N, X]
	Terminal    func(input I, sel E, t T) TermDecision[E, T, X]
}

// OnNonterminal implements Decider.
func (f DeciderFuncs[E, I, N, T, X]) OnNonterminal(input I, sel E, n N) NontermDecision[E, N, X] {
	if f.Nonterminal == nil {
		return Step[E, N, X](n)
	}
	return f.Nonterminal(input, sel, n)
}

// OnTerminal implements Decider.
func (f DeciderFuncs[E, I, N, T, X]) OnTerminal(input I, sel E, t T) TermDecision[E, T, X] {
	if f.Terminal == nil {
		panic(fmt.Sprintf("serial: DeciderFuncs.Terminal is nil; variant %v finished with no terminal decision", sel))
	}
	return f.Terminal(input, sel, t)
}
