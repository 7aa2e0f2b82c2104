package graph

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
)

// GenerateDOT renders a as a Graphviz digraph laid out left to right.
// Accept states are drawn as double circles, and an invisible point node marks
// the start state. Parallel transitions between two states share one edge whose
// label lists their symbols.
func GenerateDOT(a *domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("digraph NFA {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    _start [shape=point];\n")

	for _, s := range a.ReferencedStates() {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    %s [shape=%s];\n", quote(s), shape))
	}

	if a.Start() != "" {
		sb.WriteString(fmt.Sprintf("    _start -> %s;\n", quote(a.Start())))
	}
	for _, e := range edges(a) {
		sb.WriteString(fmt.Sprintf("    %s -> %s [label=%s];\n",
			quote(e.From), quote(e.To), quote(e.Label)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// WriteDOT writes the DOT rendering of a to path.
func WriteDOT(path string, a *domain.Automaton) error {
	if err := os.WriteFile(path, []byte(GenerateDOT(a)), 0644); err != nil {
		return fmt.Errorf("failed to write dot file: %w", err)
	}
	return nil
}

// quote makes s a DOT double-quoted string.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
