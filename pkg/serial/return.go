package serial

import "fmt"

// Return is the nonterminal output of a Branch: the subnode's value, tagged
// with the selector that was active before the step and with whether the
// subnode itself was nonterminal or terminal.
type Return[E, N, T any] struct {
	terminal bool
	sel      E
	nonterm  N
	term     T
}

// FromNonterminal reports a nonterminal subnode value.
func FromNonterminal[E, N, T any](sel E, n N) Return[E, N, T] {
	return Return[E, N, T]{sel: sel, nonterm: n}
}

// FromTerminal reports a terminal subnode value.
func FromTerminal[E, N, T any](sel E, t T) Return[E, N, T] {
	return Return[E, N, T]{terminal: true, sel: sel, term: t}
}

// Selector is the variant that produced this value.
func (r Return[E, N, T]) Selector() E { return r.sel }

// IsTerminal reports whether the subnode finished on this step.
func (r Return[E, N, T]) IsTerminal() bool { return r.terminal }

// Nonterminal returns the subnode's nonterminal value.
func (r Return[E, N, T]) Nonterminal() (N, bool) {
	return r.nonterm, !r.terminal
}

// Terminal returns the subnode's terminal value.
func (r Return[E, N, T]) Terminal() (T, bool) {
	return r.term, r.terminal
}

// Value returns whichever value the subnode reported.
func (r Return[E, N, T]) Value() any {
	if r.terminal {
		return r.term
	}
	return r.nonterm
}

func (r Return[E, N, T]) String() string {
	if r.terminal {
		return fmt.Sprintf("Terminal(%v, %v)", r.sel, r.term)
	}
	return fmt.Sprintf("Nonterminal(%v, %v)", r.sel, r.nonterm)
}
