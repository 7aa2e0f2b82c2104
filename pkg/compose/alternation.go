package compose

import (
	"fmt"

	"github.com/aretw0/nfa/pkg/domain"
)

// Alternation returns an automaton for L(a) ∪ L(b).
//
// A fresh start state is allocated with the naming allocator. On each symbol of the
// merged alphabet it carries the union of both start states' transitions. It accepts
// when either operand's start state accepts (the empty word).
func (e *Engine) Alternation(a, b *domain.Automaton) (*Result, error) {
	b, renamed, err := e.disjoint(OpAlternation, a, b)
	if err != nil {
		return nil, err
	}

	all := append(a.ReferencedStates(), b.ReferencedStates()...)
	fresh := domain.FreshState(all, domain.PickAvailablePrefix(all))

	res := &domain.Automaton{}
	res.AddState(fresh)
	if err := res.SetStart(fresh); err != nil {
		return nil, fmt.Errorf("%s: %w", OpAlternation, err)
	}
	if err := merge(res, a); err != nil {
		return nil, fmt.Errorf("%s: %w", OpAlternation, err)
	}
	if err := merge(res, b); err != nil {
		return nil, fmt.Errorf("%s: %w", OpAlternation, err)
	}

	for _, sym := range res.Alphabet() {
		targets := append(a.Targets(a.Start(), sym), b.Targets(b.Start(), sym)...)
		if len(targets) == 0 {
			continue
		}
		if err := res.AddTransition(fresh, sym, targets...); err != nil {
			return nil, fmt.Errorf("%s: %w", OpAlternation, err)
		}
	}

	res.SetAccept(a.AcceptStates()...)
	res.SetAccept(b.AcceptStates()...)
	if a.IsAccept(a.Start()) || b.IsAccept(b.Start()) {
		res.SetAccept(fresh)
	}

	return e.finish(OpAlternation, res, renamed), nil
}
