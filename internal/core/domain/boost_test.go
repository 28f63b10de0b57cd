package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoostTransaction_HappyPath(t *testing.T) {
	bt := NewBoostTransaction(7, 1, 1)
	assert.Equal(t, BoostStateForm, bt.State)

	require.NoError(t, bt.Transition(BoostStateProcessing))
	require.NoError(t, bt.Transition(BoostStateChecking))
	require.NoError(t, bt.Transition(BoostStateBoosting))
	require.NoError(t, bt.Transition(BoostStateSuccess))
	assert.True(t, bt.IsTerminal())
}

func TestBoostTransaction_GuestFallbackPaths(t *testing.T) {
	// From Processing (HTTP-level failure on the debit call).
	bt := NewBoostTransaction(7, 1, 1)
	require.NoError(t, bt.Transition(BoostStateProcessing))
	require.NoError(t, bt.Transition(BoostStateGuestFallback))
	require.NoError(t, bt.Transition(BoostStateSuccess))

	// From Checking (poll loop exhausted).
	bt = NewBoostTransaction(7, 1, 1)
	require.NoError(t, bt.Transition(BoostStateProcessing))
	require.NoError(t, bt.Transition(BoostStateChecking))
	require.NoError(t, bt.Transition(BoostStateGuestFallback))
	require.NoError(t, bt.Transition(BoostStateFailed))
	assert.True(t, bt.IsTerminal())
}

func TestBoostTransaction_IllegalTransitions(t *testing.T) {
	bt := NewBoostTransaction(7, 1, 1)
	assert.Error(t, bt.Transition(BoostStateBoosting))
	assert.Error(t, bt.Transition(BoostStateSuccess))

	require.NoError(t, bt.Transition(BoostStateProcessing))
	require.NoError(t, bt.Transition(BoostStateFailed))
	// Terminal states have no outgoing edges.
	assert.Error(t, bt.Transition(BoostStateProcessing))
	assert.Error(t, bt.Transition(BoostStateSuccess))
}
