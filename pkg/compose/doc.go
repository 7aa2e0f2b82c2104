/*
Package compose builds new automata from existing ones.

Every operation is epsilon-free: instead of inserting empty transitions between the
operands, it copies the start state's outgoing transitions onto the states that should
behave like it. This relies on the domain invariant that nothing targets a start state.

  - Concatenation(A, B) splices B's start behaviour onto every accept state of A.
  - Alternation(A, B) allocates a fresh start state carrying both start states' transitions.
  - Iteration(A) and IterationPlus(A) splice A's start behaviour onto A's own accept states.

Operands are never mutated and results never alias them. When the operands share
state names, the Engine renames the right operand's clashing states first (see
OverlapPolicy) and reports the mapping in Result.Renamed.
*/
package compose
