package serial

import "fmt"

// Action names what a decision asks the composite to do.
type Action uint8

const (
	// ActionStep keeps stepping the current variant.
	ActionStep Action = iota
	// ActionTransition switches to a freshly constructed variant.
	ActionTransition
	// ActionExit ends the composite.
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionStep:
		return "step"
	case ActionTransition:
		return "transition"
	case ActionExit:
		return "exit"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, error) {
	switch s {
	case "step":
		return ActionStep, nil
	case "transition":
		return ActionTransition, nil
	case "exit":
		return ActionExit, nil
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// NontermDecision is the answer to a nonterminal subnode step.
type NontermDecision[E, N, X any] struct {
	action Action
	target E
	out    N
	exit   X
}

// Step keeps the current variant and reports out.
func Step[E, N, X any](out N) NontermDecision[E, N, X] {
	return NontermDecision[E, N, X]{action: ActionStep, out: out}
}

// Transition abandons the current variant, starts target fresh and reports out.
func Transition[E, N, X any](target E, out N) NontermDecision[E, N, X] {
	return NontermDecision[E, N, X]{action: ActionTransition, target: target, out: out}
}

// Exit ends the composite with x.
func Exit[E, N, X any](x X) NontermDecision[E, N, X] {
	return NontermDecision[E, N, X]{action: ActionExit, exit: x}
}

// Action reports which kind of decision this is.
func (d NontermDecision[E, N, X]) Action() Action { return d.action }

// Target returns the transition target.
func (d NontermDecision[E, N, X]) Target() (E, bool) {
	return d.target, d.action == ActionTransition
}

// Output returns the value reported by a Step or Transition.
func (d NontermDecision[E, N, X]) Output() (N, bool) {
	return d.out, d.action != ActionExit
}

// ExitValue returns the exit value of an Exit.
func (d NontermDecision[E, N, X]) ExitValue() (X, bool) {
	return d.exit, d.action == ActionExit
}

// TermDecision is the answer to a terminal subnode step. There is no Step:
// the subnode is gone. The zero value is a transition to the zero selector
// reporting the zero output; build decisions with TermTransition or TermExit.
type TermDecision[E, T, X any] struct {
	exit   bool
	target E
	out    T
	value  X
}

// TermTransition starts target fresh and reports out.
func TermTransition[E, T, X any](target E, out T) TermDecision[E, T, X] {
	return TermDecision[E, T, X]{target: target, out: out}
}

// TermExit ends the composite with x.
func TermExit[E, T, X any](x X) TermDecision[E, T, X] {
	return TermDecision[E, T, X]{exit: true, value: x}
}

// Action reports ActionTransition or ActionExit.
func (d TermDecision[E, T, X]) Action() Action {
	if d.exit {
		return ActionExit
	}
	return ActionTransition
}

// Target returns the transition target.
func (d TermDecision[E, T, X]) Target() (E, bool) {
	return d.target, !d.exit
}

// Output returns the value reported by a Transition.
func (d TermDecision[E, T, X]) Output() (T, bool) {
	return d.out, !d.exit
}

// ExitValue returns the exit value of an Exit.
func (d TermDecision[E, T, X]) ExitValue() (X, bool) {
	return d.value, d.exit
}

// Decisions builds decisions without spelling out type arguments at every
// call site. Its zero value is ready to use.
//
//	var d serial.Decisions[Mode, int64, int64, struct{}]
//	return d.Step(out)
type Decisions[E, N, T, X any] struct{}

// Step is the package-level Step.
func (Decisions[E, N, T, X]) Step(out N) NontermDecision[E, N, X] {
	return Step[E, N, X](out)
}

// Transition is the package-level Transition.
func (Decisions[E, N, T, X]) Transition(target E, out N) NontermDecision[E, N, X] {
	return Transition[E, N, X](target, out)
}

// Exit is the package-level Exit.
func (Decisions[E, N, T, X]) Exit(x X) NontermDecision[E, N, X] {
	return Exit[E, N](x)
}

// TermTransition is the package-level TermTransition.
func (Decisions[E, N, T, X]) TermTransition(target E, out T) TermDecision[E, T, X] {
	return TermTransition[E, T, X](target, out)
}

// TermExit is the package-level TermExit.
func (Decisions[E, N, T, X]) TermExit(x X) TermDecision[E, T, X] {
	return TermExit[E, T](x)
}
