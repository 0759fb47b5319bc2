package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/simhub/apiserver/internal/kvstore"
	"github.com/simhub/apiserver/internal/seed"
	"github.com/simhub/apiserver/types"
	"github.com/stretchr/testify/require"
)

func newTestKV() *kvstore.KV {
	return kvstore.New(kvstore.NewMemoryBackend())
}

func TestInitializeSeedsFreshStore(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV()

	jobs := NewJobStore(kv)
	require.NoError(t, jobs.Initialize(ctx))

	all := jobs.All()
	require.Equal(t, seed.Jobs(), all)

	// seeding writes through to the persisted collection
	raw, ok, err := kv.Get(ctx, KeyJobs)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []types.Job
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Equal(t, all, persisted)
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV()

	jobs := NewJobStore(kv)
	require.NoError(t, jobs.Initialize(ctx))
	first := jobs.All()
	require.NoError(t, jobs.Initialize(ctx))
	require.Equal(t, first, jobs.All())
}

func TestInitializeNeverOverwritesExistingData(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV()

	jobs := NewJobStore(kv)
	require.NoError(t, jobs.Initialize(ctx))
	created, err := jobs.Create(ctx, types.Job{Title: "Custom", Description: "custom job"})
	require.NoError(t, err)

	// a second store over the same kv loads the persisted state, not the seed
	reloaded := NewJobStore(kv)
	require.NoError(t, reloaded.Initialize(ctx))
	require.Len(t, reloaded.All(), len(seed.Jobs())+1)

	got, err := reloaded.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestInitializeLoadsPrePersistedCollection(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV()

	existing := []types.Job{{ID: "only", Title: "Existing", Status: types.JobStatusOpen, Skills: []string{}, ProposalsData: []types.Proposal{}}}
	raw, err := json.Marshal(existing)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, KeyJobs, raw))

	jobs := NewJobStore(kv)
	require.NoError(t, jobs.Initialize(ctx))
	require.Equal(t, existing, jobs.All())
}

func TestMutationsWriteThrough(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV()

	jobs := NewJobStore(kv)
	require.NoError(t, jobs.Initialize(ctx))

	_, err := jobs.Create(ctx, types.Job{Title: "New", Description: "d"})
	require.NoError(t, err)

	// mirror and persisted copy must be identical after the mutation returns
	raw, ok, err := kv.Get(ctx, KeyJobs)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []types.Job
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Equal(t, jobs.All(), persisted)
}
