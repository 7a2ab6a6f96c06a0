/*
Package arbor is a small execution substrate for behavior tree nodes.

A node takes one input per step and consumes itself, producing either a
nonterminal output plus a continuation, or a terminal output that ends it.
Composite nodes are built from the same contract, so trees nest freely.

# Packages

  - pkg/node: the step contract (Node, Behavior, Result, Statepoint).
  - pkg/enum: closed sets of variants addressed by a selector.
  - pkg/serial: the serial branch composite and its Decider policy.
  - pkg/leaf: ready-made leaf nodes.
  - pkg/observability: logging and Prometheus observers for branches.
  - pkg/script: serial machines declared in YAML.

# Usage

The caller owns the drive loop. Drive feeds inputs one at a time and stops at
the first terminal result:

	table := enum.MustTable(
		enum.Entry[Mode, int64, int64, int64]{Selector: Positive, New: newPositive},
		enum.Entry[Mode, int64, int64, int64]{Selector: Negative, New: newNegative},
	)
	branch := serial.New[Mode, int64, int64, int64, struct{}](Switcharound{}, table, Positive)

	out, err := arbor.Drive(ctx, node.Erase[int64, serial.Return[Mode, int64, int64], struct{}](branch), inputs)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range out.Trace {
		fmt.Println(r)
	}
*/
package arbor
