package nfa

import (
	_ "embed"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/compose"
	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
)

// Version is the release of this module.
//
//go:embed VERSION
var Version string

// Automaton is a nondeterministic finite automaton. See domain.Automaton.
type Automaton = domain.Automaton

// New creates an automaton from explicit sets. The start state and the accept
// states must be among states.
func New(states, alphabet []string, start string, accept []string) (*Automaton, error) {
	return domain.New(states, alphabet, start, accept)
}

// Concatenation returns an automaton for the language of a followed by that of b.
func Concatenation(a, b *Automaton) (*Automaton, error) {
	return compose.Concatenation(a, b)
}

// Alternation returns an automaton for the union of the languages of a and b.
func Alternation(a, b *Automaton) (*Automaton, error) {
	return compose.Alternation(a, b)
}

// Iteration returns the Kleene star of a.
func Iteration(a *Automaton) (*Automaton, error) {
	return compose.Iteration(a)
}

// IterationPlus returns the Kleene plus of a.
func IterationPlus(a *Automaton) (*Automaton, error) {
	return compose.IterationPlus(a)
}

// Load reads an automaton document (JSON, or YAML for .yaml/.yml paths).
func Load(path string) (*Automaton, error) {
	return document.ReadFile(path)
}

// Save writes a as a document to path.
func Save(path string, a *Automaton) error {
	return document.WriteFile(path, a)
}

// DOT renders a in Graphviz DOT syntax.
func DOT(a *Automaton) string {
	return graph.GenerateDOT(a)
}

// ExportDOT writes the DOT rendering of a to path.
func ExportDOT(path string, a *Automaton) error {
	return graph.WriteDOT(path, a)
}
