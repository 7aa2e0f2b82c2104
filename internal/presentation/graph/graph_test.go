package graph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/nfa/internal/presentation/graph"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New([]string{"q0", "q1", "q2"}, []string{"0", "1"}, "q0", []string{"q2"})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition("q0", "1", "q1"))
	require.NoError(t, a.AddTransition("q0", "0", "q1"))
	require.NoError(t, a.AddTransition("q1", "1", "q2"))
	require.NoError(t, a.AddTransition("q2", "0", "q2"))
	return a
}

func TestGenerateDOT(t *testing.T) {
	want := `digraph NFA {
    rankdir=LR;
    _start [shape=point];
    "q0" [shape=circle];
    "q1" [shape=circle];
    "q2" [shape=doublecircle];
    _start -> "q0";
    "q0" -> "q1" [label="0,1"];
    "q1" -> "q2" [label="1"];
    "q2" -> "q2" [label="0"];
}
`
	assert.Equal(t, want, graph.GenerateDOT(sample(t)))
}

func TestGenerateDOT_QuotesIdentifiers(t *testing.T) {
	a, err := domain.New([]string{`say "hi"`}, nil, `say "hi"`, nil)
	require.NoError(t, err)

	out := graph.GenerateDOT(a)
	assert.Contains(t, out, `"say \"hi\"" [shape=circle];`)
}

func TestWriteDOT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nfa.dot")
	require.NoError(t, graph.WriteDOT(path, sample(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, graph.GenerateDOT(sample(t)), string(data))

	err = graph.WriteDOT(filepath.Join(t.TempDir(), "missing", "nfa.dot"), sample(t))
	assert.Error(t, err)
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		contains []string
	}{
		{
			name: "state shapes",
			contains: []string{
				`s_q0(("q0"))`,
				`s_q2((("q2")))`,
			},
		},
		{
			name: "start marker",
			contains: []string{
				"_start --> s_q0",
				"classDef point",
			},
		},
		{
			name: "merged edges",
			contains: []string{
				`s_q0 -- "0,1" --> s_q1`,
				`s_q2 -- "0" --> s_q2`,
			},
		},
	}

	out := graph.GenerateMermaid(sample(t))
	require.True(t, strings.HasPrefix(out, "graph LR\n"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestGenerateMermaid_SanitizesIDs(t *testing.T) {
	a, err := domain.New([]string{"a.b", "end"}, nil, "a.b", []string{"end"})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition("a.b", "x", "end"))

	out := graph.GenerateMermaid(a)
	assert.Contains(t, out, `s_a_2e_b(("a.b"))`)
	assert.Contains(t, out, `s_a_2e_b -- "x" --> s_end`)
}
