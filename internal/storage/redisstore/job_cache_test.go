package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"ats-api/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobListCache_NilClientIsAlwaysMiss(t *testing.T) {
	cache := NewJobListCache(nil, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, 0, []models.Job{{ID: uuid.New(), Title: "Backend Intern"}})
	jobs, gen, ok := cache.Get(ctx)
	assert.False(t, ok)
	assert.Nil(t, jobs)
	assert.Zero(t, gen)

	cache.Invalidate(ctx)
	assert.NoError(t, cache.Ping(ctx))
}

// getTestCache connects to TEST_REDIS_URL and clears the cache keys.
func getTestCache(t *testing.T) (*JobListCache, context.Context) {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_URL")
	if addr == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())
	require.NoError(t, client.Del(ctx, jobListKey, jobGenerationKey).Err())

	return NewJobListCache(client, time.Minute), ctx
}

func TestJobListCache_Integration(t *testing.T) {
	cache, ctx := getTestCache(t)

	_, gen, ok := cache.Get(ctx)
	assert.False(t, ok)
	assert.Zero(t, gen)

	want := []models.Job{{ID: uuid.New(), Title: "Data Analyst", JobType: models.JobTypeContract, RequiredSkills: []string{"sql"}}}
	cache.Set(ctx, gen, want)

	got, hitGen, ok := cache.Get(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, gen, hitGen)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].JobType, got[0].JobType)

	cache.Invalidate(ctx)
	_, nextGen, ok := cache.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, gen+1, nextGen)
}

func TestJobListCache_SetAfterInvalidateIsDropped(t *testing.T) {
	cache, ctx := getTestCache(t)

	// A reader misses and remembers the generation...
	_, gen, ok := cache.Get(ctx)
	require.False(t, ok)

	// ...a writer commits and invalidates while the reader queries the database...
	cache.Invalidate(ctx)

	// ...so the reader's older snapshot must not be cached.
	cache.Set(ctx, gen, []models.Job{{ID: uuid.New(), Title: "Stale"}})
	_, _, ok = cache.Get(ctx)
	assert.False(t, ok)

	// A reader that starts after the invalidation may cache.
	_, gen, _ = cache.Get(ctx)
	fresh := []models.Job{{ID: uuid.New(), Title: "Fresh"}}
	cache.Set(ctx, gen, fresh)
	got, _, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "Fresh", got[0].Title)
}
