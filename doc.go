/*
Package nfa models nondeterministic finite automata and the algebra that builds them.

Automata are composed without epsilon transitions: no transition may enter the start
state, which lets concatenation, alternation and Kleene closure splice the start
state's outgoing transitions directly onto other states.

# Key Features

  - Composition: Concatenation, Alternation, Iteration (star) and IterationPlus.
  - Disjoint operands: clashing state names of the right operand are renamed with
    fresh identifiers (prefixes S, Q, P, A, B, C, then X).
  - Reachability: unreachable states can be listed or pruned.
  - Persistence: JSON (or YAML) documents, written atomically.
  - Visualization: Graphviz DOT and Mermaid export.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/nfa"
		"github.com/aretw0/nfa/pkg/dsl"
	)

	func main() {
		b := dsl.New()
		b.State("q0").Start().On("a", "q1")
		b.State("q1").Accept()
		a, err := b.Build()
		if err != nil {
			log.Fatal(err)
		}

		star, err := nfa.Iteration(a)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(star.Accepts("a", "a", "a"))

		if err := nfa.Save("star.json", star); err != nil {
			log.Fatal(err)
		}
	}

The nfa command line tool (cmd/nfa) exposes the same operations on document files
and can serve them over HTTP.
*/
package nfa
