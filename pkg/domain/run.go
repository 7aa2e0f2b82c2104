package domain

// Accepts reports whether the automaton accepts the input word, one symbol per element.
// The simulation tracks the set of active states, so it never backtracks.
// A symbol outside the alphabet rejects the word, matching the edges reachability follows.
func (a *Automaton) Accepts(input ...string) bool {
	current := newSet(a.start)
	for _, sym := range input {
		if !a.alphabet.has(sym) {
			return false
		}
		next := make(set)
		for s := range current {
			for t := range a.transitions[Key{State: s, Symbol: sym}] {
				next[t] = struct{}{}
			}
		}
		if len(next) == 0 {
			return false
		}
		current = next
	}
	for s := range current {
		if a.accept.has(s) {
			return true
		}
	}
	return false
}
