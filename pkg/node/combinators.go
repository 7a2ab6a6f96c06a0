package node

// Lift attaches a continuation to a statepoint. The continuation is used only
// if the statepoint is nonterminal.
func Lift[N, T, S any](sp Statepoint[N, T], next S) Result[N, T, S] {
	if t, ok := sp.Terminal(); ok {
		return Terminal[N, T, S](t)
	}
	return Nonterminal[N, T](sp.nonterm, next)
}

// MapNext transforms the continuation of a nonterminal result.
func MapNext[N, T, S, S2 any](r Result[N, T, S], f func(S) S2) Result[N, T, S2] {
	if r.terminal {
		return Terminal[N, T, S2](r.term)
	}
	return Nonterminal[N, T](r.nonterm, f(r.next))
}

// MapNonterminal transforms the output of a nonterminal result.
func MapNonterminal[N, T, S, N2 any](r Result[N, T, S], f func(N) N2) Result[N2, T, S] {
	if r.terminal {
		return Terminal[N2, T, S](r.term)
	}
	return Nonterminal[N2, T](f(r.nonterm), r.next)
}

// MapTerminal transforms the value of a terminal result.
func MapTerminal[N, T, S, T2 any](r Result[N, T, S], f func(T) T2) Result[N, T2, S] {
	if r.terminal {
		return Terminal[N, T2, S](f(r.term))
	}
	return Nonterminal[N, T2](r.nonterm, r.next)
}

// AndThen chains a computation on a nonterminal statepoint. A terminal
// statepoint short-circuits and is returned unchanged.
func AndThen[N, T, N2 any](sp Statepoint[N, T], f func(N) Statepoint[N2, T]) Statepoint[N2, T] {
	if sp.terminal {
		return Finish[N2](sp.term)
	}
	return f(sp.nonterm)
}

// OrElse chains a computation on a terminal statepoint, giving it a chance to
// recover into a nonterminal. A nonterminal statepoint is returned unchanged.
func OrElse[N, T, T2 any](sp Statepoint[N, T], f func(T) Statepoint[N, T2]) Statepoint[N, T2] {
	if !sp.terminal {
		return Continue[N, T2](sp.nonterm)
	}
	return f(sp.term)
}
