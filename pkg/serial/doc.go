/*
Package serial implements the serial branch composite: a node that runs one
variant of an enumerated set at a time and lets a Decider choose, after every
subnode step, whether to keep stepping that variant, switch to another, or exit.

# Step Algorithm

 1. Read the active selector. It is captured before stepping, because stepping
    consumes the subnode.
 2. Step the subnode with the input.
 3. Hand the input, the pre-step selector and the raw subnode value to the
    Decider (OnNonterminal or OnTerminal).
 4. Apply the decision. Step keeps the subnode's continuation; Transition
    drops it and constructs the target variant from scratch; Exit ends the
    composite with the Decider's exit value.

A terminal subnode has already been consumed, so OnTerminal can only
Transition or Exit.

The composite reports Return values tagged with the pre-step selector, and its
terminal type is the Decider's exit type. A Branch is itself a node, so
node.Erase turns it into a variant of an outer enumerated set.
*/
package serial
