/*
Package domain contains the core automaton model of the nfa module.

It defines the nondeterministic finite automaton, its structural invariants and the
algorithms that only need a single automaton: fresh-name allocation, reachability
analysis, membership testing and random generation. This package is kept pure and
free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Automaton: states, alphabet, transition relation, one start state and a set of accept states.
  - Key: the (state, symbol) pair that indexes the transition relation.
  - Transition: a flattened, sorted view of one transition relation entry.

# Invariants

No transition may target the start state. The composition algorithms rely on the
start state having no incoming edges, so AddTransition and SetStart reject any change
that would break it with ErrInvalidTransition.
*/
package domain
