package ports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
)

var (
	// ErrAutomatonNotFound is returned when no automaton is stored under a name.
	ErrAutomatonNotFound = errors.New("automaton not found")
	// ErrInvalidName is returned for names that cannot address a stored automaton.
	ErrInvalidName = errors.New("invalid automaton name")
)

// AutomatonStore persists automata by name.
// Implementations store a copy: later changes to a saved or loaded automaton do not
// reach the store.
type AutomatonStore interface {
	// Save stores a under name, replacing any previous automaton.
	Save(ctx context.Context, name string, a *domain.Automaton) error

	// Load retrieves the automaton stored under name.
	// Returns ErrAutomatonNotFound if there is none.
	Load(ctx context.Context, name string) (*domain.Automaton, error)

	// Delete removes the automaton stored under name. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in sorted order.
	List(ctx context.Context) ([]string, error)
}

// ValidateName rejects empty names and names that could escape a key space or directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\\:\x00"):
		return fmt.Errorf("%w: %q contains a reserved character", ErrInvalidName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	}
	return nil
}
