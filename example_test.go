package nfa_test

import (
	"fmt"
	"log"

	"github.com/aretw0/nfa"
	"github.com/aretw0/nfa/pkg/dsl"
)

// ExampleConcatenation builds a 0 1 0* and 0, then chains them.
func ExampleConcatenation() {
	b := dsl.New()
	b.State("q0").Start().On("0", "q1")
	b.State("q1").On("1", "q2")
	b.State("q2").Accept().On("0", "q2")
	left, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	b = dsl.New()
	b.State("s0").Start().On("0", "s1", "s2")
	b.State("s1").On("1", "s3")
	b.State("s2").Accept()
	b.State("s3")
	right, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	res, err := nfa.Concatenation(left, right)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.StateCount(), res.AcceptStates())
	fmt.Println(res.Accepts("0", "1", "0"), res.Accepts("0", "1"))
	// Output:
	// 7 [s2]
	// true false
}

// ExampleIteration shows that the star of a language accepts the empty word.
func ExampleIteration() {
	a, err := nfa.New([]string{"q0", "q1"}, []string{"a"}, "q0", []string{"q1"})
	if err != nil {
		log.Fatal(err)
	}
	if err := a.AddTransition("q0", "a", "q1"); err != nil {
		log.Fatal(err)
	}

	star, err := nfa.Iteration(a)
	if err != nil {
		log.Fatal(err)
	}
	plus, err := nfa.IterationPlus(a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(star.Accepts(), star.Accepts("a", "a", "a"))
	fmt.Println(plus.Accepts(), plus.Accepts("a", "a"))
	// Output:
	// true true
	// false true
}

// ExampleDOT prints the Graphviz rendering of a two-state automaton.
func ExampleDOT() {
	a, err := nfa.New([]string{"q0", "q1"}, []string{"a", "b"}, "q0", []string{"q1"})
	if err != nil {
		log.Fatal(err)
	}
	_ = a.AddTransition("q0", "a", "q1")
	_ = a.AddTransition("q0", "b", "q1")

	fmt.Print(nfa.DOT(a))
	// Output:
	// digraph NFA {
	//     rankdir=LR;
	//     _start [shape=point];
	//     "q0" [shape=circle];
	//     "q1" [shape=doublecircle];
	//     _start -> "q0";
	//     "q0" -> "q1" [label="a,b"];
	// }
}
