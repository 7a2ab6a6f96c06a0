package node

import (
	"errors"
	"fmt"
)

// ErrSpent is the panic value raised when a guarded node is stepped twice.
var ErrSpent = errors.New("node stepped after it was consumed")

type guardState struct {
	spent bool
}

// Guarded wraps a Behavior and panics if the same handle is stepped more than
// once. Copies of a Guarded share the check.
type Guarded[I, N, T any] struct {
	inner Behavior[I, N, T]
	state *guardState
	depth int
}

// Guard wraps b in a reuse check.
func Guard[I, N, T any](b Behavior[I, N, T]) Guarded[I, N, T] {
	return Guarded[I, N, T]{inner: b, state: &guardState{}}
}

// Step implements Behavior. Each continuation gets a fresh guard.
func (g Guarded[I, N, T]) Step(input I) Result[N, T, Behavior[I, N, T]] {
	if g.state == nil {
		panic(fmt.Errorf("%w: zero Guarded", ErrSpent))
	}
	if g.state.spent {
		panic(fmt.Errorf("%w: handle at step %d reused", ErrSpent, g.depth))
	}
	g.state.spent = true

	return MapNext(g.inner.Step(input), func(next Behavior[I, N, T]) Behavior[I, N, T] {
		return Guarded[I, N, T]{inner: next, state: &guardState{}, depth: g.depth + 1}
	})
}
