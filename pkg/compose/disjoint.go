package compose

import (
	"fmt"
	"slices"

	"github.com/aretw0/nfa/pkg/domain"
)

// disjoint returns right unchanged when it shares no state name with left. Otherwise,
// under OverlapRename, it returns a copy of right whose clashing states got fresh names,
// with the mapping.
func (e *Engine) disjoint(op Operation, left, right *domain.Automaton) (*domain.Automaton, map[string]string, error) {
	leftStates := left.ReferencedStates()
	rightStates := right.ReferencedStates()

	var clashes []string
	for _, s := range rightStates {
		if _, found := slices.BinarySearch(leftStates, s); found {
			clashes = append(clashes, s)
		}
	}
	if len(clashes) == 0 {
		return right, nil, nil
	}
	if e.policy == OverlapReject {
		return nil, nil, fmt.Errorf("%s: %w: %v", op, ErrOverlappingStates, clashes)
	}

	used := append(slices.Clone(leftStates), rightStates...)
	prefix := domain.PickAvailablePrefix(used)
	mapping := make(map[string]string, len(clashes))
	for _, s := range clashes {
		fresh := domain.FreshState(used, prefix)
		mapping[s] = fresh
		used = append(used, fresh)
	}

	e.logger.Debug("renamed clashing states", "operation", op, "count", len(mapping))

	renamed, err := rename(right, mapping)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return renamed, mapping, nil
}

// rename copies a, replacing state names found in mapping.
func rename(a *domain.Automaton, mapping map[string]string) (*domain.Automaton, error) {
	name := func(s string) string {
		if n, ok := mapping[s]; ok {
			return n
		}
		return s
	}

	res := &domain.Automaton{}
	for _, s := range a.States() {
		res.AddState(name(s))
	}
	for _, sym := range a.Alphabet() {
		res.AddSymbol(sym)
	}
	if err := res.SetStart(name(a.Start())); err != nil {
		return nil, err
	}
	for _, s := range a.AcceptStates() {
		res.SetAccept(name(s))
	}
	for _, t := range a.Transitions() {
		to := make([]string, len(t.To))
		for i, s := range t.To {
			to[i] = name(s)
		}
		if err := res.AddTransition(name(t.From), t.Symbol, to...); err != nil {
			return nil, err
		}
	}
	return res, nil
}
