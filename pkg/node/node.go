package node

// Node is the step contract.
//
// Step consumes the receiver. On a nonterminal result the returned S is the
// node to step next; on a terminal result nothing remains. Implementations
// usually satisfy Node with S set to their own type. Step is total: domain
// failures belong in T.
type Node[I, N, T, S any] interface {
	Step(input I) Result[N, T, S]
}

// Behavior is a Node with its concrete type erased. It is what heterogeneous
// containers, such as the variants of an enumerated set, hold.
type Behavior[I, N, T any] interface {
	Step(input I) Result[N, T, Behavior[I, N, T]]
}

// Erase lifts a self-continuing node into a Behavior. Every continuation it
// produces is erased in turn.
func Erase[I, N, T any, S Node[I, N, T, S]](n S) Behavior[I, N, T] {
	return erased[I, N, T, S]{inner: n}
}

type erased[I, N, T any, S Node[I, N, T, S]] struct {
	inner S
}

func (e erased[I, N, T, S]) Step(input I) Result[N, T, Behavior[I, N, T]] {
	return MapNext(e.inner.Step(input), Erase[I, N, T, S])
}

// Func adapts a plain function into a Behavior that never changes: every
// nonterminal step continues with the same function.
type Func[I, N, T any] func(input I) Statepoint[N, T]

// Step implements Behavior.
func (f Func[I, N, T]) Step(input I) Result[N, T, Behavior[I, N, T]] {
	return Lift[N, T, Behavior[I, N, T]](f(input), f)
}
