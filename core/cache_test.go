package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry_StateMachine(t *testing.T) {
	var e Entry[int]
	require.Equal(t, EntryEmpty, e.State(0))

	calls := 0
	compute := func() int {
		calls++
		return calls * 10
	}

	require.Equal(t, 10, e.GetOrCompute(3, compute))
	require.Equal(t, EntryValid, e.State(3))

	require.Equal(t, 10, e.GetOrCompute(3, compute))
	require.Equal(t, 1, e.Computations())

	require.Equal(t, EntryStale, e.State(4))
	require.Equal(t, 20, e.GetOrCompute(4, compute))
	require.Equal(t, EntryValid, e.State(4))
	require.Equal(t, 2, e.Computations())

	e.Invalidate()
	require.Equal(t, EntryEmpty, e.State(4))
	require.Equal(t, 30, e.GetOrCompute(4, compute))
	require.Equal(t, 3, e.Computations())
}

func TestEntryState_String(t *testing.T) {
	require.Equal(t, "empty", EntryEmpty.String())
	require.Equal(t, "valid", EntryValid.String())
	require.Equal(t, "stale", EntryStale.String())
}
