package domain

import (
	"github.com/dominikbraun/graph"
)

// reachable returns every state with a path from the start state over alphabet symbols.
// The start state itself is included.
func (a *Automaton) reachable() set {
	g := graph.New(graph.StringHash, graph.Directed())
	for _, s := range a.ReferencedStates() {
		_ = g.AddVertex(s)
	}
	for k, dst := range a.transitions {
		if !a.alphabet.has(k.Symbol) {
			continue
		}
		for t := range dst {
			// Several symbols between the same pair collapse into one edge.
			_ = g.AddEdge(k.State, t)
		}
	}

	seen := make(set)
	if a.start == "" {
		return seen
	}
	_ = graph.BFS(g, a.start, func(s string) bool {
		seen[s] = struct{}{}
		return false
	})
	return seen
}

// UnreachableStates returns, in sorted order, the registered states that have no path
// from the start state. A state with outgoing edges into the reachable part is still
// unreachable when nothing reachable leads to it.
func (a *Automaton) UnreachableStates() []string {
	live := a.reachable()
	var dead []string
	for _, s := range a.states.sorted() {
		if !live.has(s) {
			dead = append(dead, s)
		}
	}
	return dead
}

// PruneUnreachable removes unreachable states from the state set and the accept set,
// drops transitions leaving them, strips them from destination sets and drops entries
// whose destination set becomes empty. It returns the removed registered states.
//
// Applying it twice yields the same automaton as applying it once.
func (a *Automaton) PruneUnreachable() []string {
	live := a.reachable()
	dead := a.UnreachableStates()

	for s := range a.states {
		if !live.has(s) {
			delete(a.states, s)
		}
	}
	for s := range a.accept {
		if !live.has(s) {
			delete(a.accept, s)
		}
	}
	for k, dst := range a.transitions {
		if !live.has(k.State) {
			delete(a.transitions, k)
			continue
		}
		for t := range dst {
			if !live.has(t) {
				delete(dst, t)
			}
		}
		if len(dst) == 0 {
			delete(a.transitions, k)
		}
	}
	return dead
}

// Pruned returns a pruned copy and leaves a untouched.
func (a *Automaton) Pruned() *Automaton {
	c := a.Clone()
	c.PruneUnreachable()
	return c
}
