package script

import (
	"math"

	"github.com/aretw0/arbor/pkg/enum"
	"github.com/aretw0/arbor/pkg/leaf"
	"github.com/aretw0/arbor/pkg/node"
	"github.com/aretw0/arbor/pkg/serial"
)

type (
	// Table is the enumerated set built from a machine's variants.
	Table = enum.Table[string, int64, int64, int64]
	// Branch is a running machine.
	Branch = serial.Branch[string, int64, int64, int64, int64]
	// Return is a running machine's nonterminal output.
	Return = serial.Return[string, int64, int64]
)

// Table builds the variant set. The machine must be valid.
func (m *Machine) Table() (*Table, error) {
	entries := make([]enum.Entry[string, int64, int64, int64], 0, len(m.Variants))
	for _, v := range m.Variants {
		entries = append(entries, enum.Entry[string, int64, int64, int64]{
			Selector: v.Name,
			New:      v.constructor(),
		})
	}
	return enum.NewTable(entries...)
}

func (v Variant) constructor() func() node.Behavior[int64, int64, int64] {
	factor := int64(1)
	if v.Factor != nil {
		factor = *v.Factor
	}
	threshold := v.Threshold
	maxSteps, onLimit := v.MaxSteps, v.OnLimit

	return func() node.Behavior[int64, int64, int64] {
		wait := leaf.NewPredicateWait(func(i int64) node.Statepoint[int64, int64] {
			if i >= threshold {
				return node.Continue[int64, int64](scale(i, factor))
			}
			return node.Finish[int64](scale(i, factor))
		}).Behavior()
		if maxSteps == 0 {
			return wait
		}
		return node.Erase[int64, int64, int64](leaf.NewLimit(wait, maxSteps, onLimit))
	}
}

// scale multiplies i by factor, saturating at the int64 bounds instead of
// wrapping around.
func scale(i, factor int64) int64 {
	p := i * factor
	overflow := i != 0 && p/i != factor
	if (i == -1 && factor == math.MinInt64) || (factor == -1 && i == math.MinInt64) {
		overflow = true
	}
	if !overflow {
		return p
	}
	if (i < 0) == (factor < 0) {
		return math.MaxInt64
	}
	return math.MinInt64
}

// Decider returns the rule-driven decider. The machine must be valid.
func (m *Machine) Decider() serial.Decider[string, int64, int64, int64, int64] {
	return ruleDecider{rules: m.Rules}
}

// Build validates the machine and returns it at its initial variant.
func (m *Machine) Build(opts ...serial.Option) (Branch, error) {
	if err := m.Validate(); err != nil {
		return Branch{}, err
	}
	table, err := m.Table()
	if err != nil {
		return Branch{}, err
	}
	return serial.New[string, int64, int64, int64, int64](m.Decider(), table, m.Initial, opts...), nil
}

type ruleDecider struct {
	rules Rules
}

var decide serial.Decisions[string, int64, int64, int64]

func (d ruleDecider) OnNonterminal(_ int64, sel string, n int64) serial.NontermDecision[string, int64, int64] {
	r, ok := d.rules.OnNonterminal[sel]
	if !ok || !r.applies(n) {
		return decide.Step(n)
	}
	switch r.Action {
	case "transition":
		return decide.Transition(r.To, n)
	case "exit":
		return decide.Exit(n)
	default:
		return decide.Step(n)
	}
}

func (d ruleDecider) OnTerminal(_ int64, sel string, t int64) serial.TermDecision[string, int64, int64] {
	r := d.rules.OnTerminal[sel]
	if r.Action == "exit" {
		return decide.TermExit(t)
	}
	return decide.TermTransition(r.To, t)
}

func (r Rule) applies(n int64) bool {
	if r.Above != nil && n <= *r.Above {
		return false
	}
	if r.Below != nil && n >= *r.Below {
		return false
	}
	return true
}
