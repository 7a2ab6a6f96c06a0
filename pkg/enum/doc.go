/*
Package enum provides closed families of node variants that share one input,
nonterminal and terminal type.

An Enumerated value is a tagged union: a selector naming the active variant and
the live node for it. The selector is fixed at the same point the node is
built, either by Construct or by Wrap on a Variant that reports its own
selector, so the two cannot drift apart.

Table is the ready-made Enumeration: an ordered list of selectors, each with a
constructor for a fresh node.

	table, err := enum.NewTable(
		enum.Entry[Mode, int64, int64, int64]{Selector: Positive, New: newPositive},
		enum.Entry[Mode, int64, int64, int64]{Selector: Negative, New: newNegative},
	)
*/
package enum
