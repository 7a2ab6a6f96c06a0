/*
Package script declares integer serial machines in YAML.

A machine lists its variants and the rules its decider follows:

	name: switcharound
	initial: positive
	variants:
	  - name: positive
	    factor: 1
	  - name: negative
	    factor: -1
	decider:
	  on_terminal:
	    positive: { action: transition, to: negative }
	    negative: { action: transition, to: positive }

Every variant reports input*factor, saturated at the int64 bounds. It stays nonterminal while the input is at
least its threshold (default 0) and goes terminal otherwise. With max_steps
set, it is forced terminal with on_limit after that many nonterminal steps.

Nonterminal rules are optional and default to step. A rule applies only when
its above/below bounds hold for the reported value; otherwise the variant
keeps stepping. Every variant must have a terminal rule, which makes the
decider total over the set. An exit rule ends the machine with the subnode's
value.
*/
package script
