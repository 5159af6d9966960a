package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterIDs(t *testing.T) {
	t.Parallel()

	ids, err := NewIDs(CounterIDs)
	require.NoError(t, err)

	assert.Equal(t, "city0", ids.Cities.Next())
	assert.Equal(t, "area0", ids.Areas.Next())
	assert.Equal(t, "city1", ids.Cities.Next())
	assert.Equal(t, "city2", ids.Cities.Next())
	assert.Equal(t, "area1", ids.Areas.Next())
}

func TestIDsNeverRepeat(t *testing.T) {
	t.Parallel()

	for _, strategy := range []IDStrategy{CounterIDs, ShortIDs} {
		ids, err := NewIDs(strategy)
		require.NoError(t, err)

		seen := map[string]bool{}
		for i := 0; i < 1000; i++ {
			id := ids.Cities.Next()
			assert.True(t, strings.HasPrefix(id, "city"))
			assert.False(t, seen[id], id)
			seen[id] = true
		}
	}
}

func TestUnknownIDStrategy(t *testing.T) {
	t.Parallel()

	_, err := NewIDs("uuid")
	assert.Error(t, err)
}
