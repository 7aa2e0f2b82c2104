package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/nfa/pkg/document"
	"github.com/aretw0/nfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New([]string{"q0", "q1", "q2"}, []string{"0", "1"}, "q0", []string{"q2"})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition("q0", "0", "q1"))
	require.NoError(t, a.AddTransition("q1", "1", "q2"))
	require.NoError(t, a.AddTransition("q2", "0", "q2", "q1"))
	return a
}

func TestMarshal_JSONLayout(t *testing.T) {
	data, err := document.Marshal(sample(t), document.FormatJSON)
	require.NoError(t, err)

	want := `{
    "states": [
        "q0",
        "q1",
        "q2"
    ],
    "alphabet": [
        "0",
        "1"
    ],
    "transition_table": [
        {
            "from_state": "q0",
            "symbol": "0",
            "to_states": [
                "q1"
            ]
        },
        {
            "from_state": "q1",
            "symbol": "1",
            "to_states": [
                "q2"
            ]
        },
        {
            "from_state": "q2",
            "symbol": "0",
            "to_states": [
                "q1",
                "q2"
            ]
        }
    ],
    "start_state": "q0",
    "accept_states": [
        "q2"
    ]
}
`
	assert.Equal(t, want, string(data))
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []document.Format{document.FormatJSON, document.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			a := sample(t)
			data, err := document.Marshal(a, format)
			require.NoError(t, err)

			got, err := document.Unmarshal(data, format)
			require.NoError(t, err)
			assert.True(t, a.Equal(got))
		})
	}
}

func TestRoundTrip_Random(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		cfg := domain.DefaultRandomConfig()
		cfg.States = 8
		cfg.Seed = seed
		a, err := domain.Random(cfg)
		require.NoError(t, err)

		data, err := document.Marshal(a, document.FormatJSON)
		require.NoError(t, err)
		got, err := document.Unmarshal(data, document.FormatJSON)
		require.NoError(t, err)
		assert.True(t, a.Equal(got), "seed %d", seed)
	}
}

func TestRoundTrip_UndeclaredSymbolSurvives(t *testing.T) {
	a := sample(t)
	require.NoError(t, a.AddTransition("q2", "c", "q2"))

	data, err := document.Marshal(a, document.FormatJSON)
	require.NoError(t, err)
	got, err := document.Unmarshal(data, document.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"q2"}, got.Targets("q2", "c"))
	assert.False(t, got.HasSymbol("c"))
}

func TestUnmarshal_TransitionTableOptional(t *testing.T) {
	data := []byte(`{"states":["q0"],"alphabet":["a"],"start_state":"q0","accept_states":[]}`)
	a, err := document.Unmarshal(data, document.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 0, a.TransitionCount())
	assert.Equal(t, "q0", a.Start())
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"top level array", `[]`},
		{"null document", `null`},
		{"missing states", `{"alphabet":[],"start_state":"q0","accept_states":[]}`},
		{"missing start", `{"states":["q0"],"alphabet":[],"accept_states":[]}`},
		{"null accept", `{"states":["q0"],"alphabet":[],"start_state":"q0","accept_states":null}`},
		{"states not a list", `{"states":"q0","alphabet":[],"start_state":"q0","accept_states":[]}`},
		{"numeric start", `{"states":["q0"],"alphabet":[],"start_state":0,"accept_states":[]}`},
		{"start not a state", `{"states":["q0"],"alphabet":[],"start_state":"q1","accept_states":[]}`},
		{"accept not a state", `{"states":["q0"],"alphabet":[],"start_state":"q0","accept_states":["q9"]}`},
		{"transition into start", `{"states":["q0","q1"],"alphabet":["a"],"start_state":"q0","accept_states":[],
			"transition_table":[{"from_state":"q1","symbol":"a","to_states":["q0"]}]}`},
		{"transition row of wrong shape", `{"states":["q0"],"alphabet":[],"start_state":"q0","accept_states":[],
			"transition_table":[["q0","a","q0"]]}`},
		{"transition without source", `{"states":["q0","q1"],"alphabet":["a"],"start_state":"q0","accept_states":[],
			"transition_table":[{"symbol":"a","to_states":["q1"]}]}`},
		{"transition without targets", `{"states":["q0","q1"],"alphabet":["a"],"start_state":"q0","accept_states":[],
			"transition_table":[{"from_state":"q0","symbol":"a"}]}`},
		{"transition without symbol", `{"states":["q0","q1"],"alphabet":["a"],"start_state":"q0","accept_states":[],
			"transition_table":[{"from_state":"q0","to_states":["q1"]}]}`},
		{"transition with null symbol", `{"states":["q0","q1"],"alphabet":["a"],"start_state":"q0","accept_states":[],
			"transition_table":[{"from_state":"q0","symbol":null,"to_states":["q1"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := document.Unmarshal([]byte(tt.data), document.FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, document.ErrMalformedDocument)
			assert.Nil(t, a)
		})
	}
}

func TestUnmarshal_YAML(t *testing.T) {
	data := []byte(`
states: [S0, S1]
alphabet: [a]
start_state: S0
accept_states: [S1]
transition_table:
  - from_state: S0
    symbol: a
    to_states: [S1]
`)
	a, err := document.Unmarshal(data, document.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, a.Targets("S0", "a"))
	assert.True(t, a.IsAccept("S1"))
}

func TestUnmarshal_YAMLTransitionWithoutTargets(t *testing.T) {
	data := []byte(`
states: [S0, S1]
alphabet: [a]
start_state: S0
accept_states: [S1]
transition_table:
  - from_state: S0
    symbol: a
`)
	_, err := document.Unmarshal(data, document.FormatYAML)
	assert.ErrorIs(t, err, document.ErrMalformedDocument)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, document.FormatYAML, document.FormatFromPath("a/b.yaml"))
	assert.Equal(t, document.FormatYAML, document.FormatFromPath("b.YML"))
	assert.Equal(t, document.FormatJSON, document.FormatFromPath("b.json"))
	assert.Equal(t, document.FormatJSON, document.FormatFromPath("b"))
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"nfa.json", "nfa.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			a := sample(t)
			require.NoError(t, document.WriteFile(path, a))

			got, err := document.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, a.Equal(got))
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files must not be left behind")
}

func TestWriteFile_IOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nfa.json")
	err := document.WriteFile(path, sample(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrIO)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := document.ReadFile(filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, document.ErrIO)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"states":[]}`), 0644))
	_, err = document.ReadFile(bad)
	assert.ErrorIs(t, err, document.ErrMalformedDocument)
}

func TestReadInto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nfa.json")
	require.NoError(t, document.WriteFile(path, sample(t)))

	var target domain.Automaton
	require.True(t, document.ReadInto(path, &target))
	assert.True(t, sample(t).Equal(&target))

	t.Run("failure leaves target untouched", func(t *testing.T) {
		before := target.Clone()
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"states":["q0"]`), 0644))

		assert.False(t, document.ReadInto(bad, &target))
		assert.False(t, document.ReadInto(filepath.Join(dir, "absent.json"), &target))
		assert.True(t, before.Equal(&target))
	})
}
