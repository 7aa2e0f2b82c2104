package dsl

import "github.com/aretw0/nfa/pkg/domain"

type edge struct {
	symbol  string
	targets []string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	id      string
	start   bool
	accept  bool
	edges   []edge
	builder *Builder
}

// Start marks the state as the start state.
func (s *StateBuilder) Start() *StateBuilder {
	s.start = true
	return s
}

// Accept marks the state as accepting.
func (s *StateBuilder) Accept() *StateBuilder {
	s.accept = true
	return s
}

// On adds a transition on symbol to the targets.
func (s *StateBuilder) On(symbol string, targets ...string) *StateBuilder {
	s.edges = append(s.edges, edge{symbol: symbol, targets: targets})
	return s
}

// State jumps to another state declaration, so chains can continue.
func (s *StateBuilder) State(id string) *StateBuilder {
	return s.builder.State(id)
}

// ID returns the state identifier.
func (s *StateBuilder) ID() string {
	return s.id
}

// Build finishes the chain. See Builder.Build.
func (s *StateBuilder) Build() (*domain.Automaton, error) {
	return s.builder.Build()
}
