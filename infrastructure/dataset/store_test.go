package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SnapshotIsNilBeforeLoad(t *testing.T) {
	store := NewStore(NewSyntheticSource(), testSeed, 30, 15)

	assert.Nil(t, store.Snapshot())
}

func TestStore_LoadGeneratesCompleteSnapshot(t *testing.T) {
	store := NewStore(NewSyntheticSource(), testSeed, 30, 15)
	until := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	store.Load(until)

	snapshot := store.Snapshot()
	require.NotNil(t, snapshot)
	assert.Len(t, snapshot.Series, 30)
	assert.Len(t, snapshot.Campaigns, 15)
	assert.Len(t, snapshot.Goals, 4)
	assert.Equal(t, testSeed, snapshot.Seed)
	assert.Equal(t, until, snapshot.Series[len(snapshot.Series)-1].Date)
}

func TestStore_RollForwardSwapsSnapshot(t *testing.T) {
	store := NewStore(NewSyntheticSource(), testSeed, 30, 15)

	store.Load(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	before := store.Snapshot()

	store.RollForward(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	after := store.Snapshot()

	require.NotNil(t, after)
	assert.NotSame(t, before, after)

	// A série avança um dia; a mesma semente mantém campanhas e metas
	assert.Equal(t,
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		after.Series[len(after.Series)-1].Date,
	)
	assert.Equal(t, before.Goals, after.Goals)
	for i := range before.Campaigns {
		assert.Equal(t, *before.Campaigns[i], *after.Campaigns[i])
	}
}
