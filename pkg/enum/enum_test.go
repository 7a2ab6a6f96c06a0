package enum_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/enum"
	"github.com/aretw0/arbor/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode int

const (
	up mode = iota
	down
	hold
)

// ramp adds step to its running total and goes terminal once the total
// leaves [-limit, limit].
type ramp struct {
	step, total, limit int
}

func (r ramp) Step(_ int) node.Result[int, int, node.Behavior[int, int, int]] {
	total := r.total + r.step
	if total > r.limit || total < -r.limit {
		return node.Terminal[int, int, node.Behavior[int, int, int]](total)
	}
	return node.Nonterminal[int, int, node.Behavior[int, int, int]](total, ramp{step: r.step, total: total, limit: r.limit})
}

// tagged is a ramp that reports its own selector.
type tagged struct {
	ramp
	sel mode
}

func (t tagged) Selector() mode { return t.sel }

func newTable(t *testing.T) *enum.Table[mode, int, int, int] {
	t.Helper()
	table, err := enum.NewTable(
		enum.Entry[mode, int, int, int]{Selector: up, New: func() node.Behavior[int, int, int] { return ramp{step: 1, limit: 2} }},
		enum.Entry[mode, int, int, int]{Selector: down, New: func() node.Behavior[int, int, int] { return ramp{step: -1, limit: 2} }},
		enum.Entry[mode, int, int, int]{Selector: hold, New: func() node.Behavior[int, int, int] { return ramp{limit: 2} }},
	)
	require.NoError(t, err)
	return table
}

func TestConstruct_SelectorFidelity(t *testing.T) {
	table := newTable(t)
	for _, sel := range table.Selectors() {
		assert.Equal(t, sel, enum.Construct[mode, int, int, int](table, sel).Selector())
	}
}

func TestWrap_UsesVariantSelector(t *testing.T) {
	e := enum.Wrap[mode, int, int, int](tagged{ramp: ramp{step: 1, limit: 5}, sel: down})
	assert.Equal(t, down, e.Selector())
	assert.IsType(t, tagged{}, e.Unwrap())
}

func TestEnumerated_StepKeepsSelector(t *testing.T) {
	table := newTable(t)
	e := enum.Construct[mode, int, int, int](table, down)

	out, next, ok := e.Step(0).Next()
	require.True(t, ok)
	assert.Equal(t, -1, out)
	assert.Equal(t, down, next.Selector())

	out, next, ok = next.Step(0).Next()
	require.True(t, ok)
	assert.Equal(t, -2, out)

	r := next.Step(0)
	require.True(t, r.IsTerminal())
	v, _ := r.Terminal()
	assert.Equal(t, -3, v)
}

func TestConstruct_IsFresh(t *testing.T) {
	table := newTable(t)

	first := enum.Construct[mode, int, int, int](table, up)
	_, first, _ = first.Step(0).Next()
	first.Step(0)

	again := enum.Construct[mode, int, int, int](table, up)
	out, _, ok := again.Step(0).Next()
	require.True(t, ok)
	assert.Equal(t, 1, out, "a constructed variant starts from scratch")
}

func TestTable(t *testing.T) {
	table := newTable(t)

	assert.Equal(t, up, table.Default())
	assert.Equal(t, []mode{up, down, hold}, table.Selectors())
	assert.True(t, table.Has(hold))
	assert.False(t, table.Has(mode(7)))

	sels := table.Selectors()
	sels[0] = hold
	assert.Equal(t, up, table.Selectors()[0], "Selectors returns a copy")

	assert.Panics(t, func() { table.New(mode(7)) })
}

func TestNewTable_Errors(t *testing.T) {
	mk := func() node.Behavior[int, int, int] { return ramp{} }

	_, err := enum.NewTable[mode, int, int, int]()
	assert.ErrorIs(t, err, enum.ErrEmptyTable)

	_, err = enum.NewTable(
		enum.Entry[mode, int, int, int]{Selector: up, New: mk},
		enum.Entry[mode, int, int, int]{Selector: up, New: mk},
	)
	assert.ErrorIs(t, err, enum.ErrDuplicateSelector)

	_, err = enum.NewTable(enum.Entry[mode, int, int, int]{Selector: up})
	assert.ErrorIs(t, err, enum.ErrNilConstructor)

	assert.Panics(t, func() { enum.MustTable(enum.Entry[mode, int, int, int]{Selector: up}) })
}
