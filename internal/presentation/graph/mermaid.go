package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart for a.
// It applies the same shapes as the DOT export:
// - Accept: (((Double circle)))
// - Other states: ((Circle))
// - Start: entered from an invisible point node
func GenerateMermaid(a *domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range a.ReferencedStates() {
		opener, closer := "((", "))"
		if a.IsAccept(s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(s), opener, escapeLabel(s), closer))
	}

	if a.Start() != "" {
		sb.WriteString("    _start[ ]:::point\n")
		sb.WriteString(fmt.Sprintf("    _start --> %s\n", sanitizeMermaidID(a.Start())))
	}
	for _, e := range edges(a) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(e.From), escapeLabel(e.Label), sanitizeMermaidID(e.To)))
	}

	if a.Start() != "" {
		sb.WriteString("\n    classDef point fill:#000,stroke:#000,width:0px,height:0px;\n")
	}
	return sb.String()
}

// sanitizeMermaidID maps a state id to a Mermaid node id. Ids are prefixed so that
// state names such as "end" cannot clash with Mermaid keywords.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	sb.WriteString("s_")
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteString(fmt.Sprintf("_%x_", r))
		}
	}
	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
