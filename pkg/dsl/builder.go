package dsl

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/nfa/pkg/domain"
)

// ErrNoStart is returned by Build when no state was marked as start.
var ErrNoStart = errors.New("no start state")

// ErrMultipleStarts is returned by Build when more than one state was marked as start.
var ErrMultipleStarts = errors.New("multiple start states")

// Builder manages the automaton construction.
type Builder struct {
	order   []string
	states  map[string]*StateBuilder
	symbols []string
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// State declares a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Symbols declares input symbols that no transition uses yet.
func (b *Builder) Symbols(symbols ...string) *Builder {
	b.symbols = append(b.symbols, symbols...)
	return b
}

// Build validates the declarations and compiles them into an automaton.
func (b *Builder) Build() (*domain.Automaton, error) {
	var starts, accept []string
	alphabet := slices.Clone(b.symbols)
	for _, id := range b.order {
		sb := b.states[id]
		if sb.start {
			starts = append(starts, id)
		}
		if sb.accept {
			accept = append(accept, id)
		}
		for _, e := range sb.edges {
			alphabet = append(alphabet, e.symbol)
		}
	}

	switch len(starts) {
	case 0:
		return nil, ErrNoStart
	case 1:
	default:
		return nil, fmt.Errorf("%w: %v", ErrMultipleStarts, starts)
	}

	a, err := domain.New(b.order, alphabet, starts[0], accept)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}

	var errs []error
	for _, id := range b.order {
		for _, e := range b.states[id].edges {
			if err := a.AddTransition(id, e.symbol, e.targets...); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return a, nil
}
