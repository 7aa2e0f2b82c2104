package compose

import (
	"fmt"

	"github.com/aretw0/nfa/pkg/domain"
)

// Iteration returns an automaton for the Kleene star L(a)*.
//
// Every accept state receives the start state's transitions, so a word may restart
// after each accepted piece. Since nothing targets the start state, marking it
// accepting adds exactly the empty word. No state is added.
func (e *Engine) Iteration(a *domain.Automaton) (*Result, error) {
	res, err := loopBack(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpIteration, err)
	}
	res.SetAccept(a.Start())
	return e.finish(OpIteration, res, nil), nil
}

// IterationPlus returns an automaton for L(a)+, one or more repetitions.
// The empty word is accepted only if a already accepts it.
func (e *Engine) IterationPlus(a *domain.Automaton) (*Result, error) {
	res, err := loopBack(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", OpIterationPlus, err)
	}
	return e.finish(OpIterationPlus, res, nil), nil
}

func loopBack(a *domain.Automaton) (*domain.Automaton, error) {
	res := a.Clone()
	for _, acc := range a.AcceptStates() {
		for _, sym := range a.Alphabet() {
			targets := a.Targets(a.Start(), sym)
			if len(targets) == 0 {
				continue
			}
			if err := res.AddTransition(acc, sym, targets...); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}
