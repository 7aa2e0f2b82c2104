package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/aretw0/nfa/pkg/ports"
)

// Store implements ports.AutomatonStore using the local filesystem.
// It stores each automaton as a JSON document named after it in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".nfa".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = ".nfa"
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+".json")
}

// Save writes the automaton document atomically.
func (s *Store) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure store directory: %w", err)
	}
	if err := document.WriteFile(s.path(name), a); err != nil {
		return fmt.Errorf("failed to save automaton %q: %w", name, err)
	}
	return nil
}

// Load reads the automaton document.
func (s *Store) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	if err := ports.ValidateName(name); err != nil {
		return nil, err
	}
	a, err := document.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ports.ErrAutomatonNotFound
		}
		return nil, fmt.Errorf("failed to load automaton %q: %w", name, err)
	}
	return a, nil
}

// Delete removes the automaton document.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ports.ValidateName(name); err != nil {
		return err
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete automaton file: %w", err)
	}
	return nil
}

// List returns the names of all stored documents. Temp files of interrupted writes are skipped.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list automata: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	slices.Sort(names)
	return names, nil
}
