/*
Package dsl provides a fluent Go DSL for constructing automata.

It is the checked constructor of the module: the builder collects states, symbols and
transitions, and Build validates every cross reference (start state, accept states,
transition endpoints) before returning a domain.Automaton. This is particularly useful
for tests and for generating automata programmatically.

Example usage:

	b := dsl.New()

	b.State("q0").Start().On("0", "q1")
	b.State("q1").On("1", "q2")
	b.State("q2").Accept().On("0", "q2")

	a, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(a.Accepts("0", "1")) // true
*/
package dsl
