package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/lithammer/dedent"
)

var summaryTemplate = dedent.Dedent(`
	# %s

	| | |
	|---|---|
	| States | %d |
	| Alphabet | %s |
	| Start | %s |
	| Accept | %s |
	| Unreachable | %s |
`)

// Describe summarizes a as markdown: its sets followed by the transition table.
func Describe(name string, a *domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimPrefix(fmt.Sprintf(summaryTemplate,
		name,
		a.StateCount(),
		codeList(a.Alphabet()),
		codeList([]string{a.Start()}),
		codeList(a.AcceptStates()),
		codeList(a.UnreachableStates()),
	), "\n"))

	ts := a.Transitions()
	if len(ts) == 0 {
		sb.WriteString("\n_No transitions._\n")
		return sb.String()
	}
	sb.WriteString("\n## Transitions\n\n")
	sb.WriteString("| From | Symbol | To |\n|---|---|---|\n")
	for _, t := range ts {
		sym := code(t.Symbol)
		if !a.HasSymbol(t.Symbol) {
			sym += " _(not in alphabet)_"
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", code(t.From), sym, codeList(t.To)))
	}
	return sb.String()
}

func code(s string) string {
	if s == "" {
		return "-"
	}
	return "`" + strings.ReplaceAll(s, "|", "\\|") + "`"
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = code(it)
	}
	return strings.Join(parts, ", ")
}
