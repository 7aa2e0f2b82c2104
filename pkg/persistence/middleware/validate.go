package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
)

// ErrInvalidAutomaton is returned by a validating store for automata that
// reference unregistered states.
var ErrInvalidAutomaton = errors.New("automaton failed validation")

type validatingMiddleware struct {
	ports.AutomatonStore
}

// NewValidatingMiddleware rejects, on Save, automata whose start state, accept states
// or transitions name states that are not registered.
func NewValidatingMiddleware() Middleware {
	return func(next ports.AutomatonStore) ports.AutomatonStore {
		return &validatingMiddleware{AutomatonStore: next}
	}
}

func (m *validatingMiddleware) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAutomaton, err)
	}
	return m.AutomatonStore.Save(ctx, name, a)
}
