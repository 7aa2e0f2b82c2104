package compose

import (
	"fmt"

	"github.com/aretw0/nfa/pkg/domain"
)

// Concatenation returns an automaton for L(a)·L(b).
//
// The result holds both operands' states, symbols and transitions. Every accept state
// of a additionally receives, for each symbol of b's alphabet, the transitions of b's
// start state. Accept states are b's, plus a's when b's start state accepts (the empty
// suffix). The start state is a's.
func (e *Engine) Concatenation(a, b *domain.Automaton) (*Result, error) {
	b, renamed, err := e.disjoint(OpConcatenation, a, b)
	if err != nil {
		return nil, err
	}

	res := &domain.Automaton{}
	res.AddState(a.Start())
	if err := res.SetStart(a.Start()); err != nil {
		return nil, fmt.Errorf("%s: %w", OpConcatenation, err)
	}
	if err := merge(res, a); err != nil {
		return nil, fmt.Errorf("%s: %w", OpConcatenation, err)
	}
	if err := merge(res, b); err != nil {
		return nil, fmt.Errorf("%s: %w", OpConcatenation, err)
	}

	for _, acc := range a.AcceptStates() {
		for _, sym := range b.Alphabet() {
			targets := b.Targets(b.Start(), sym)
			if len(targets) == 0 {
				continue
			}
			if err := res.AddTransition(acc, sym, targets...); err != nil {
				return nil, fmt.Errorf("%s: %w", OpConcatenation, err)
			}
		}
	}

	res.SetAccept(b.AcceptStates()...)
	if b.IsAccept(b.Start()) {
		res.SetAccept(a.AcceptStates()...)
	}

	return e.finish(OpConcatenation, res, renamed), nil
}
