package enum

import "github.com/aretw0/arbor/pkg/node"

// Enumeration is a closed set of node variants addressed by selector E.
type Enumeration[E comparable, I, N, T any] interface {
	// New builds a fresh node for sel. It must succeed for every selector
	// returned by Selectors.
	New(sel E) node.Behavior[I, N, T]
	// Selectors lists every variant in declaration order.
	Selectors() []E
}

// Variant is a node that knows which selector its shape corresponds to.
type Variant[E comparable, I, N, T any] interface {
	node.Behavior[I, N, T]
	Selector() E
}

// Enumerated pairs a selector with the live node built for it.
type Enumerated[E comparable, I, N, T any] struct {
	sel  E
	node node.Behavior[I, N, T]
}

// Construct builds a fresh node for sel.
func Construct[E comparable, I, N, T any](set Enumeration[E, I, N, T], sel E) Enumerated[E, I, N, T] {
	return Enumerated[E, I, N, T]{sel: sel, node: set.New(sel)}
}

// Wrap attaches selector identity to an already-live variant. The selector is
// read from the variant itself.
func Wrap[E comparable, I, N, T any](v Variant[E, I, N, T]) Enumerated[E, I, N, T] {
	return Enumerated[E, I, N, T]{sel: v.Selector(), node: v}
}

// Selector reports the active variant without stepping it.
func (e Enumerated[E, I, N, T]) Selector() E {
	return e.sel
}

// Unwrap discards the selector and returns the node.
func (e Enumerated[E, I, N, T]) Unwrap() node.Behavior[I, N, T] {
	return e.node
}

// Step steps the active node. A nonterminal continuation keeps the selector.
func (e Enumerated[E, I, N, T]) Step(input I) node.Result[N, T, Enumerated[E, I, N, T]] {
	sel := e.sel
	return node.MapNext(e.node.Step(input), func(next node.Behavior[I, N, T]) Enumerated[E, I, N, T] {
		return Enumerated[E, I, N, T]{sel: sel, node: next}
	})
}
