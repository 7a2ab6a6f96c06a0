package enum

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/pkg/node"
)

var (
	// ErrDuplicateSelector is returned when a table declares a selector twice.
	ErrDuplicateSelector = errors.New("duplicate selector")
	// ErrNilConstructor is returned when a table entry has no constructor.
	ErrNilConstructor = errors.New("nil constructor")
	// ErrEmptyTable is returned when a table declares no entries.
	ErrEmptyTable = errors.New("table has no entries")
)

// Entry declares one variant of a Table.
type Entry[E comparable, I, N, T any] struct {
	Selector E
	New      func() node.Behavior[I, N, T]
}

// Table is an Enumeration backed by a fixed list of entries.
type Table[E comparable, I, N, T any] struct {
	order []E
	ctors map[E]func() node.Behavior[I, N, T]
}

// NewTable validates the entries and builds a Table. Entry order is kept;
// the first entry is the default variant.
func NewTable[E comparable, I, N, T any](entries ...Entry[E, I, N, T]) (*Table[E, I, N, T], error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table[E, I, N, T]{
		order: make([]E, 0, len(entries)),
		ctors: make(map[E]func() node.Behavior[I, N, T], len(entries)),
	}
	for i, e := range entries {
		if e.New == nil {
			return nil, fmt.Errorf("entry %d (%v): %w", i, e.Selector, ErrNilConstructor)
		}
		if _, exists := t.ctors[e.Selector]; exists {
			return nil, fmt.Errorf("entry %d (%v): %w", i, e.Selector, ErrDuplicateSelector)
		}
		t.ctors[e.Selector] = e.New
		t.order = append(t.order, e.Selector)
	}
	return t, nil
}

// MustTable is NewTable that panics on error. Intended for package-level tables.
func MustTable[E comparable, I, N, T any](entries ...Entry[E, I, N, T]) *Table[E, I, N, T] {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// New builds a fresh node for sel. An unknown selector is a programming
// error and panics.
func (t *Table[E, I, N, T]) New(sel E) node.Behavior[I, N, T] {
	ctor, ok := t.ctors[sel]
	if !ok {
		panic(fmt.Sprintf("enum: unknown selector %v", sel))
	}
	return ctor()
}

// Selectors returns the selectors in declaration order.
func (t *Table[E, I, N, T]) Selectors() []E {
	out := make([]E, len(t.order))
	copy(out, t.order)
	return out
}

// Has reports whether sel is declared.
func (t *Table[E, I, N, T]) Has(sel E) bool {
	_, ok := t.ctors[sel]
	return ok
}

// Default returns the first declared selector.
func (t *Table[E, I, N, T]) Default() E {
	return t.order[0]
}
