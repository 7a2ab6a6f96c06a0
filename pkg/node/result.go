package node

import "fmt"

// Result is the outcome of a single step.
//
// A nonterminal result holds the output and the continuation S, which is the
// only steppable handle on the node afterwards. A terminal result holds only
// the terminal value; the node that produced it is gone.
type Result[N, T, S any] struct {
	terminal bool
	nonterm  N
	next     S
	term     T
}

// Nonterminal returns a nonterminal result with its continuation.
func Nonterminal[N, T, S any](n N, next S) Result[N, T, S] {
	return Result[N, T, S]{nonterm: n, next: next}
}

// Terminal returns a terminal result.
func Terminal[N, T, S any](t T) Result[N, T, S] {
	return Result[N, T, S]{terminal: true, term: t}
}

// IsTerminal reports whether the step ended the node.
func (r Result[N, T, S]) IsTerminal() bool {
	return r.terminal
}

// Next returns the nonterminal output and the continuation.
// For a terminal result it returns zero values and false.
func (r Result[N, T, S]) Next() (N, S, bool) {
	if r.terminal {
		var (
			zeroN N
			zeroS S
		)
		return zeroN, zeroS, false
	}
	return r.nonterm, r.next, true
}

// Terminal returns the terminal value and true, or the zero value and false.
func (r Result[N, T, S]) Terminal() (T, bool) {
	if !r.terminal {
		var zero T
		return zero, false
	}
	return r.term, true
}

// Statepoint drops the continuation and keeps the reported value.
func (r Result[N, T, S]) Statepoint() Statepoint[N, T] {
	if r.terminal {
		return Finish[N](r.term)
	}
	return Continue[N, T](r.nonterm)
}

func (r Result[N, T, S]) String() string {
	if r.terminal {
		return fmt.Sprintf("Terminal(%v)", r.term)
	}
	return fmt.Sprintf("Nonterminal(%v)", r.nonterm)
}
