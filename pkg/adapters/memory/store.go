package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
)

// Store implements ports.AutomatonStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Automaton
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Automaton),
	}
}

// Save keeps a deep copy of a, so later changes by the caller do not leak in.
func (s *Store) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	c := a.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = c
	return nil
}

// Load returns a copy of the stored automaton.
func (s *Store) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.data[name]
	if !ok {
		return nil, ports.ErrAutomatonNotFound
	}
	return a.Clone(), nil
}

// Delete removes the automaton.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
