/*
Package node defines the step contract shared by every behavior tree node.

A node is a value that, given one input, consumes itself and produces either a
nonterminal output together with a continuation (the node to step next), or a
terminal output that ends its lifetime. Once a node has produced a terminal
result there is nothing left to step: the result carries no continuation.

# Key Types

  - Statepoint: a bare nonterminal-or-terminal value, used by leaves to report progress.
  - Result: the step contract's own shape, nonterminal-with-continuation or terminal.
  - Node: the F-bounded contract, where S is the node's own continuation type.
  - Behavior: a type-erased Node whose continuation is again a Behavior.

Go cannot forbid stepping a value twice. Nodes are written with value receivers
and return fresh continuations, so the rule is "step the continuation, drop the
rest". Guard adds a runtime check for tests that want the reuse caught.
*/
package node
