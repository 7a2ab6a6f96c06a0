package node_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countdown goes terminal after it has been stepped `left` more times.
type countdown struct {
	left int
}

func (c countdown) Step(input int) node.Result[int, string, countdown] {
	if c.left <= 0 {
		return node.Terminal[int, string, countdown]("done")
	}
	return node.Nonterminal[int, string](input+c.left, countdown{left: c.left - 1})
}

func TestStatepoint(t *testing.T) {
	nt := node.Continue[int, string](3)
	assert.False(t, nt.IsTerminal())
	n, ok := nt.Nonterminal()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = nt.Terminal()
	assert.False(t, ok)

	term := node.Finish[int]("stop")
	assert.True(t, term.IsTerminal())
	v, ok := term.Terminal()
	assert.True(t, ok)
	assert.Equal(t, "stop", v)
	assert.Equal(t, "Terminal(stop)", term.String())
	assert.Equal(t, node.Finish[int]("stop"), term)

	n, v, terminal := nt.Unpack()
	assert.False(t, terminal)
	assert.Equal(t, 3, n)
	assert.Empty(t, v)

	n, v, terminal = term.Unpack()
	assert.True(t, terminal)
	assert.Zero(t, n)
	assert.Equal(t, "stop", v)
}

func TestResult_TerminalHasNoContinuation(t *testing.T) {
	r := countdown{left: 0}.Step(1)
	require.True(t, r.IsTerminal())

	_, next, ok := r.Next()
	assert.False(t, ok)
	assert.Equal(t, countdown{}, next, "terminal result must not expose a continuation")

	v, ok := r.Terminal()
	assert.True(t, ok)
	assert.Equal(t, "done", v)
}

func TestResult_NonterminalCarriesContinuation(t *testing.T) {
	r := countdown{left: 2}.Step(10)
	out, next, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 12, out)
	assert.Equal(t, countdown{left: 1}, next)
	assert.Equal(t, node.Continue[int, string](12), r.Statepoint())
}

func TestLift(t *testing.T) {
	r := node.Lift(node.Continue[int, string](1), countdown{left: 5})
	_, next, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, countdown{left: 5}, next)

	r = node.Lift(node.Finish[int]("x"), countdown{left: 5})
	assert.True(t, r.IsTerminal())
}

func TestMapCombinators(t *testing.T) {
	r := countdown{left: 1}.Step(1)

	doubled := node.MapNonterminal(r, func(n int) int { return n * 2 })
	out, _, ok := doubled.Next()
	require.True(t, ok)
	assert.Equal(t, 4, out)

	term := node.MapTerminal(countdown{}.Step(0), func(s string) int { return len(s) })
	v, ok := term.Terminal()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	// Mapping the terminal side leaves a nonterminal untouched.
	untouched := node.MapTerminal(r, func(s string) int { return -1 })
	out, _, ok = untouched.Next()
	require.True(t, ok)
	assert.Equal(t, 2, out)
}

func TestAndThenOrElse(t *testing.T) {
	half := func(n int) node.Statepoint[int, string] {
		if n%2 != 0 {
			return node.Finish[int]("odd")
		}
		return node.Continue[int, string](n / 2)
	}

	sp := node.AndThen(node.AndThen(node.Continue[int, string](8), half), half)
	n, ok := sp.Nonterminal()
	require.True(t, ok)
	assert.Equal(t, 2, n)

	sp = node.AndThen(node.AndThen(node.Continue[int, string](6), half), half)
	v, ok := sp.Terminal()
	require.True(t, ok)
	assert.Equal(t, "odd", v)

	recovered := node.OrElse(sp, func(s string) node.Statepoint[int, error] {
		return node.Continue[int, error](len(s))
	})
	n, ok = recovered.Nonterminal()
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestErase(t *testing.T) {
	var b node.Behavior[int, int, string] = node.Erase[int, int, string](countdown{left: 2})

	var outputs []int
	for {
		r := b.Step(1)
		out, next, ok := r.Next()
		if !ok {
			v, _ := r.Terminal()
			assert.Equal(t, "done", v)
			break
		}
		outputs = append(outputs, out)
		b = next
	}
	assert.Equal(t, []int{3, 2}, outputs)
}

func TestFunc(t *testing.T) {
	f := node.Func[int, int, int](func(i int) node.Statepoint[int, int] {
		if i < 0 {
			return node.Finish[int](-i)
		}
		return node.Continue[int, int](i)
	})

	out, next, ok := f.Step(4).Next()
	require.True(t, ok)
	assert.Equal(t, 4, out)

	v, ok := next.Step(-4).Terminal()
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestGuard_PanicsOnReuse(t *testing.T) {
	g := node.Guard(node.Erase[int, int, string](countdown{left: 3}))

	r := g.Step(0)
	_, next, ok := r.Next()
	require.True(t, ok)

	err := recoverError(func() { g.Step(0) })
	require.ErrorIs(t, err, node.ErrSpent)

	// The continuation is a fresh handle and steps normally.
	assert.NoError(t, recoverError(func() { next.Step(0) }))
	err = recoverError(func() { next.Step(0) })
	assert.ErrorIs(t, err, node.ErrSpent)
}

func TestGuard_ZeroValue(t *testing.T) {
	var g node.Guarded[int, int, string]
	assert.ErrorIs(t, recoverError(func() { g.Step(0) }), node.ErrSpent)
}
