package dsl

import (
	"testing"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleAutomaton(t *testing.T) {
	// 1. Build the automaton using DSL
	b := New()

	b.State("q0").Start().On("0", "q1")
	b.State("q1").On("1", "q2")
	b.State("q2").Accept().On("0", "q2")

	a, err := b.Build()
	require.NoError(t, err)

	// 2. Verify structure
	assert.Equal(t, "q0", a.Start())
	assert.Equal(t, []string{"q0", "q1", "q2"}, a.States())
	assert.Equal(t, []string{"0", "1"}, a.Alphabet())
	assert.Equal(t, []string{"q2"}, a.AcceptStates())
	assert.Equal(t, []string{"q2"}, a.Targets("q2", "0"))

	// 3. Verify behaviour
	assert.True(t, a.Accepts("0", "1", "0"))
	assert.False(t, a.Accepts("1"))
}

func TestBuilder_ChainedStates(t *testing.T) {
	a, err := New().Symbols("x").
		State("s0").Start().On("a", "s1", "s2").
		State("s1").On("b", "s2").
		State("s2").Accept().
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "x"}, a.Alphabet())
	assert.Equal(t, []string{"s1", "s2"}, a.Targets("s0", "a"))
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{
			name:  "no start",
			build: func(b *Builder) { b.State("q0").Accept() },
			want:  ErrNoStart,
		},
		{
			name: "two starts",
			build: func(b *Builder) {
				b.State("q0").Start()
				b.State("q1").Start()
			},
			want: ErrMultipleStarts,
		},
		{
			name:  "transition into start",
			build: func(b *Builder) { b.State("q0").Start().On("a", "q0") },
			want:  domain.ErrInvalidTransition,
		},
		{
			name:  "undeclared target",
			build: func(b *Builder) { b.State("q0").Start().On("a", "q9") },
			want:  domain.ErrUnknownState,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			tt.build(b)
			_, err := b.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
