package plancache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/venore/training-api/internal/errors"
	"github.com/venore/training-api/internal/pkg/clock"
)

const defaultLRUSize = 1024

// LRUConfig holds the configuration for the in-process repository
type LRUConfig struct {
	// Size is the maximum number of cached plans; zero means the default
	Size  int
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *LRUConfig) Validate() error {
	if c.Size < 0 {
		return errors.InvalidArgumentf("size must be non-negative, got %d", c.Size)
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type lruEntry struct {
	cached    CachedPlan
	expiresAt time.Time
}

type lruRepository struct {
	cache *lru.Cache[string, lruEntry]
	clock clock.Clock
}

// NewLRURepository creates an in-process plan cache. It serves deployments
// without a Redis endpoint, including the CLI.
func NewLRURepository(cfg *LRUConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.Size
	if size == 0 {
		size = defaultLRUSize
	}

	cache, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lru cache")
	}

	return &lruRepository{
		cache: cache,
		clock: cfg.Clock,
	}, nil
}

// Ensure lruRepository implements Repository
var _ Repository = (*lruRepository)(nil)

// Set stores a plan under key with the specified TTL
func (r *lruRepository) Set(_ context.Context, input SetInput) error {
	if input.Key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}
	if input.Plan == nil {
		return errors.InvalidArgument(errPlanNil)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	now := r.clock.Now()
	r.cache.Add(input.Key, lruEntry{
		cached:    CachedPlan{Plan: input.Plan, CachedAt: now},
		expiresAt: now.Add(ttl),
	})

	return nil
}

// Get retrieves a cached plan by key
func (r *lruRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	entry, ok := r.cache.Get(input.Key)
	if !ok {
		return nil, errors.NotFound("plan not cached")
	}

	if r.clock.Now().After(entry.expiresAt) {
		r.cache.Remove(input.Key)
		return nil, errors.NotFound("cached plan has expired")
	}

	cached := entry.cached
	return &GetOutput{Cached: &cached}, nil
}
