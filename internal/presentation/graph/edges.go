package graph

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/nfa/pkg/domain"
)

// edge is one arrow of the rendered graph. Symbols on the same pair of states are merged.
type edge struct {
	From, To string
	Label    string
}

func edges(a *domain.Automaton) []edge {
	type pair struct{ from, to string }
	labels := make(map[pair][]string)
	for _, t := range a.Transitions() {
		for _, to := range t.To {
			p := pair{t.From, to}
			labels[p] = append(labels[p], t.Symbol)
		}
	}

	res := make([]edge, 0, len(labels))
	for _, p := range slices.SortedFunc(maps.Keys(labels), func(x, y pair) int {
		return cmp.Or(cmp.Compare(x.from, y.from), cmp.Compare(x.to, y.to))
	}) {
		syms := labels[p]
		slices.Sort(syms)
		res = append(res, edge{From: p.from, To: p.to, Label: strings.Join(syms, ",")})
	}
	return res
}
