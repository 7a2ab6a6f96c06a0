package serial_test

import (
	"github.com/aretw0/arbor/pkg/enum"
	"github.com/aretw0/arbor/pkg/leaf"
	"github.com/aretw0/arbor/pkg/node"
	"github.com/aretw0/arbor/pkg/serial"
)

type posNeg int

const (
	positive posNeg = iota
	negative
)

func (p posNeg) String() string {
	if p == negative {
		return "negative"
	}
	return "positive"
}

type (
	multiEntry  = enum.Entry[posNeg, int64, int64, int64]
	multiTable  = enum.Table[posNeg, int64, int64, int64]
	multiReturn = serial.Return[posNeg, int64, int64]
)

// multiMachine is the two-variant set used throughout: Positive reports the
// input, Negative reports it negated, and both go terminal on a negative input.
func multiMachine() *multiTable {
	return enum.MustTable(
		multiEntry{Selector: positive, New: func() node.Behavior[int64, int64, int64] {
			return leaf.NewPredicateWait(func(i int64) node.Statepoint[int64, int64] {
				if i >= 0 {
					return node.Continue[int64, int64](i)
				}
				return node.Finish[int64](i)
			}).Behavior()
		}},
		multiEntry{Selector: negative, New: func() node.Behavior[int64, int64, int64] {
			return leaf.NewPredicateWait(func(i int64) node.Statepoint[int64, int64] {
				if i >= 0 {
					return node.Continue[int64, int64](-i)
				}
				return node.Finish[int64](-i)
			}).Behavior()
		}},
	)
}

var decide serial.Decisions[posNeg, int64, int64, struct{}]

// switcharound always steps on a nonterminal and flips variant on a terminal,
// carrying the value forward. It never exits.
type switcharound struct{}

func (switcharound) OnNonterminal(_ int64, _ posNeg, o int64) serial.NontermDecision[posNeg, int64, struct{}] {
	return decide.Step(o)
}

func (switcharound) OnTerminal(_ int64, sel posNeg, o int64) serial.TermDecision[posNeg, int64, struct{}] {
	switch sel {
	case positive:
		return decide.TermTransition(negative, o)
	default:
		return decide.TermTransition(positive, o)
	}
}

// accumulator sums its inputs.
type accumulator struct {
	total int64
}

func (a accumulator) Step(i int64) node.Result[int64, int64, accumulator] {
	if i < 0 {
		return node.Terminal[int64, int64, accumulator](a.total)
	}
	return node.Nonterminal[int64, int64](a.total+i, accumulator{total: a.total + i})
}

func accumulators() *multiTable {
	mk := func() node.Behavior[int64, int64, int64] {
		return node.Erase[int64, int64, int64](accumulator{})
	}
	return enum.MustTable(
		multiEntry{Selector: positive, New: mk},
		multiEntry{Selector: negative, New: mk},
	)
}
