// Package leaf holds small ready-made leaf nodes for composing and testing
// behavior trees.
package leaf

import "github.com/aretw0/arbor/pkg/node"

// PredicateWait evaluates a predicate on every input and stays alive for as
// long as the predicate reports a nonterminal statepoint.
type PredicateWait[I, N, T any] struct {
	pred func(I) node.Statepoint[N, T]
}

// NewPredicateWait returns a PredicateWait around pred.
func NewPredicateWait[I, N, T any](pred func(I) node.Statepoint[N, T]) PredicateWait[I, N, T] {
	return PredicateWait[I, N, T]{pred: pred}
}

// Step implements node.Node.
func (w PredicateWait[I, N, T]) Step(input I) node.Result[N, T, PredicateWait[I, N, T]] {
	return node.Lift(w.pred(input), w)
}

// Behavior returns w as an erased node.
func (w PredicateWait[I, N, T]) Behavior() node.Behavior[I, N, T] {
	return node.Erase[I, N, T](w)
}

// Limit wraps a behavior and forces it terminal with onLimit once it has
// produced n nonterminal outputs.
type Limit[I, N, T any] struct {
	inner   node.Behavior[I, N, T]
	left    int
	onLimit T
}

// NewLimit returns a Limit allowing n nonterminal steps of inner.
func NewLimit[I, N, T any](inner node.Behavior[I, N, T], n int, onLimit T) Limit[I, N, T] {
	return Limit[I, N, T]{inner: inner, left: n, onLimit: onLimit}
}

// Step implements node.Node.
func (l Limit[I, N, T]) Step(input I) node.Result[N, T, Limit[I, N, T]] {
	if l.left <= 0 {
		return node.Terminal[N, T, Limit[I, N, T]](l.onLimit)
	}
	return node.MapNext(l.inner.Step(input), func(next node.Behavior[I, N, T]) Limit[I, N, T] {
		return Limit[I, N, T]{inner: next, left: l.left - 1, onLimit: l.onLimit}
	})
}

// Remaining reports how many nonterminal steps are left.
func (l Limit[I, N, T]) Remaining() int {
	return l.left
}
