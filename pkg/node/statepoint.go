package node

import "fmt"

// Statepoint is either a nonterminal value N or a terminal value T.
// It carries no continuation; see Lift for turning it into a Result.
type Statepoint[N, T any] struct {
	terminal bool
	nonterm  N
	term     T
}

// Continue returns a nonterminal statepoint.
func Continue[N, T any](n N) Statepoint[N, T] {
	return Statepoint[N, T]{nonterm: n}
}

// Finish returns a terminal statepoint.
func Finish[N, T any](t T) Statepoint[N, T] {
	return Statepoint[N, T]{terminal: true, term: t}
}

// IsTerminal reports whether the statepoint is terminal.
func (s Statepoint[N, T]) IsTerminal() bool {
	return s.terminal
}

// Nonterminal returns the nonterminal value and true, or the zero value and false.
func (s Statepoint[N, T]) Nonterminal() (N, bool) {
	if s.terminal {
		var zero N
		return zero, false
	}
	return s.nonterm, true
}

// Terminal returns the terminal value and true, or the zero value and false.
func (s Statepoint[N, T]) Terminal() (T, bool) {
	if !s.terminal {
		var zero T
		return zero, false
	}
	return s.term, true
}

// Unpack returns both slots and whether the statepoint is terminal. Only the
// slot named by the flag holds a value; the other is zero.
func (s Statepoint[N, T]) Unpack() (N, T, bool) {
	return s.nonterm, s.term, s.terminal
}

func (s Statepoint[N, T]) String() string {
	if s.terminal {
		return fmt.Sprintf("Terminal(%v)", s.term)
	}
	return fmt.Sprintf("Nonterminal(%v)", s.nonterm)
}
