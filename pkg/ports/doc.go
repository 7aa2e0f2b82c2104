/*
Package ports defines the driven ports (interfaces) behind the nfa tools.

These interfaces decouple the command line and HTTP server from where named
automata are kept, allowing the same code to run against memory, local files,
Redis or a bolt database.

# Key Interfaces

  - AutomatonStore: Saves, loads, deletes and lists automata by name.
  - Locker: Serializes read-modify-write cycles on a stored automaton.
*/
package ports
