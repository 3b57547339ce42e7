package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"ats-api/internal/models"
	"ats-api/internal/storage"

	"github.com/redis/go-redis/v9"
)

const (
	jobListKey       = "ats:jobs:all"
	jobGenerationKey = "ats:jobs:generation"
)

// errStaleGeneration aborts a Set whose snapshot predates an Invalidate.
var errStaleGeneration = errors.New("job list generation moved")

// JobListCache stores the full, newest-first job list as one JSON value,
// guarded by a generation counter that Invalidate increments.
// A nil client turns every call into a miss or a no-op.
type JobListCache struct {
	client *redis.Client
	ttl    time.Duration

	warned atomic.Bool
}

// NewJobListCache creates a cache backed by client.
func NewJobListCache(client *redis.Client, ttl time.Duration) *JobListCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &JobListCache{client: client, ttl: ttl}
}

var _ storage.JobListCache = (*JobListCache)(nil)

func (c *JobListCache) Get(ctx context.Context) ([]models.Job, int64, bool) {
	if c == nil || c.client == nil {
		return nil, 0, false
	}
	vals, err := c.client.MGet(ctx, jobListKey, jobGenerationKey).Result()
	if err != nil {
		c.warnOnce(err)
		return nil, 0, false
	}

	var generation int64
	if raw, ok := vals[1].(string); ok {
		if generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			log.Printf("JobListCache: bad generation %q: %v", raw, err)
			return nil, 0, false
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, generation, false
	}
	var jobs []models.Job
	if err := json.Unmarshal([]byte(raw), &jobs); err != nil {
		log.Printf("JobListCache: discarding undecodable entry: %v", err)
		return nil, generation, false
	}
	return jobs, generation, true
}

// Set stores jobs if the generation is still the one the caller read.
// The check and the write run in one WATCH transaction.
func (c *JobListCache) Set(ctx context.Context, generation int64, jobs []models.Job) {
	if c == nil || c.client == nil {
		return
	}
	b, err := json.Marshal(jobs)
	if err != nil {
		log.Printf("JobListCache: encode failed: %v", err)
		return
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, jobGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, jobListKey, b, c.ttl)
			return nil
		})
		return err
	}, jobGenerationKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		log.Printf("JobListCache: skipped caching a list older than generation %d", generation)
	default:
		c.warnOnce(err)
	}
}

// Invalidate bumps the generation and drops the cached list.
func (c *JobListCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, jobGenerationKey)
		pipe.Del(ctx, jobListKey)
		return nil
	})
	if err != nil {
		c.warnOnce(err)
	}
}

// Ping reports whether the backing Redis is reachable.
func (c *JobListCache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *JobListCache) warnOnce(err error) {
	if c.warned.CompareAndSwap(false, true) {
		log.Printf("JobListCache: Redis unavailable, bypassing cache: %v", err)
	}
}
