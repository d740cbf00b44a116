package plancache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venore/training-api/internal/errors"
	plancache "github.com/venore/training-api/internal/repositories/plan_cache"
)

// fakeClock lets tests move time forward without sleeping
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestLRURepository_RoundTrip(t *testing.T) {
	repo, err := plancache.NewLRURepository(&plancache.LRUConfig{Clock: &fakeClock{now: time.Unix(1_000, 0)}})
	require.NoError(t, err)

	ctx := context.Background()
	plan := samplePlan()

	require.NoError(t, repo.Set(ctx, plancache.SetInput{Key: "k", Plan: plan}))

	out, err := repo.Get(ctx, plancache.GetInput{Key: "k"})
	require.NoError(t, err)
	assert.Equal(t, plan, out.Cached.Plan)
	assert.Equal(t, time.Unix(1_000, 0), out.Cached.CachedAt)
}

func TestLRURepository_Miss(t *testing.T) {
	repo, err := plancache.NewLRURepository(&plancache.LRUConfig{Clock: &fakeClock{}})
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), plancache.GetInput{Key: "absent"})
	assert.True(t, errors.IsNotFound(err))
}

func TestLRURepository_TTLExpiry(t *testing.T) {
	clk := &fakeClock{now: time.Unix(0, 0)}
	repo, err := plancache.NewLRURepository(&plancache.LRUConfig{Clock: clk})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, plancache.SetInput{Key: "short", Plan: samplePlan(), TTL: time.Minute}))

	clk.now = clk.now.Add(2 * time.Minute)

	_, err = repo.Get(ctx, plancache.GetInput{Key: "short"})
	assert.True(t, errors.IsNotFound(err))
}

func TestLRURepository_EvictsOldest(t *testing.T) {
	repo, err := plancache.NewLRURepository(&plancache.LRUConfig{Size: 2, Clock: &fakeClock{}})
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("k%d", i)
		require.NoError(t, repo.Set(ctx, plancache.SetInput{Key: key, Plan: samplePlan()}))
	}

	_, err = repo.Get(ctx, plancache.GetInput{Key: "k0"})
	assert.True(t, errors.IsNotFound(err), "oldest entry should have been evicted")

	_, err = repo.Get(ctx, plancache.GetInput{Key: "k2"})
	assert.NoError(t, err)
}

func TestNewLRURepository_RequiresClock(t *testing.T) {
	_, err := plancache.NewLRURepository(&plancache.LRUConfig{})
	require.Error(t, err)
}
