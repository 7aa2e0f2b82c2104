package ports

import (
	"context"
	"testing"

	"github.com/aretw0/nfa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractAutomaton(t *testing.T) *domain.Automaton {
	t.Helper()
	a, err := domain.New([]string{"q0", "q1", "q2"}, []string{"0", "1"}, "q0", []string{"q2"})
	require.NoError(t, err)
	require.NoError(t, a.AddTransition("q0", "0", "q1", "q2"))
	require.NoError(t, a.AddTransition("q1", "1", "q2"))
	require.NoError(t, a.AddTransition("q2", "x", "q2"))
	return a
}

// RunAutomatonStoreContract runs a suite of tests to verify that an AutomatonStore
// implementation adheres to the defined interface contract.
// The store must be empty when the suite starts.
func RunAutomatonStoreContract(t *testing.T, store AutomatonStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		a := contractAutomaton(t)
		require.NoError(t, store.Save(ctx, "contract", a), "Save should not return error")

		loaded, err := store.Load(ctx, "contract")
		require.NoError(t, err, "Load should not return error")
		assert.True(t, a.Equal(loaded), "loaded automaton should equal the saved one")
	})

	t.Run("Save Replaces", func(t *testing.T) {
		a := contractAutomaton(t)
		a.SetAccept("q1")
		require.NoError(t, store.Save(ctx, "contract", a))

		loaded, err := store.Load(ctx, "contract")
		require.NoError(t, err)
		assert.Equal(t, []string{"q1", "q2"}, loaded.AcceptStates())
	})

	t.Run("Stored Copy Is Isolated", func(t *testing.T) {
		a := contractAutomaton(t)
		require.NoError(t, store.Save(ctx, "isolated", a))
		a.AddState("q9")

		loaded, err := store.Load(ctx, "isolated")
		require.NoError(t, err)
		assert.False(t, loaded.HasState("q9"))

		loaded.AddState("q8")
		again, err := store.Load(ctx, "isolated")
		require.NoError(t, err)
		assert.False(t, again.HasState("q8"))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent")
		assert.ErrorIs(t, err, ErrAutomatonNotFound)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		err := store.Save(ctx, "../escape", contractAutomaton(t))
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("List", func(t *testing.T) {
		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"contract", "isolated"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "isolated"), "Delete should not return error")

		_, err := store.Load(ctx, "isolated")
		assert.ErrorIs(t, err, ErrAutomatonNotFound, "Load after Delete should return ErrAutomatonNotFound")

		require.NoError(t, store.Delete(ctx, "isolated"), "deleting twice is not an error")

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"contract"}, names)
	})
}
