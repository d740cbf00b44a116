package plancache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/venore/training-api/internal/errors"
	"github.com/venore/training-api/internal/pkg/clock"
	redisclient "github.com/venore/training-api/internal/redis"
)

const (
	// Key pattern: training_plan:{request digest}
	planKeyPrefix = "training_plan:"
	defaultTTL    = time.Hour

	errKeyEmpty = "key cannot be empty"
	errPlanNil  = "plan cannot be nil"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for cached plans
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Set stores a plan under key with the specified TTL
func (r *redisRepository) Set(ctx context.Context, input SetInput) error {
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

	cached := &CachedPlan{
		Plan:     input.Plan,
		CachedAt: r.clock.Now(),
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal plan")
	}

	if err := r.client.Set(ctx, planKeyPrefix+input.Key, payload, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to store plan in Redis")
	}

	return nil
}

// Get retrieves a cached plan by key
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	payload, err := r.client.Get(ctx, planKeyPrefix+input.Key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("plan not cached")
		}
		return nil, errors.Wrapf(err, "failed to get plan from Redis")
	}

	var cached CachedPlan
	if err := json.Unmarshal([]byte(payload), &cached); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal plan")
	}

	return &GetOutput{Cached: &cached}, nil
}
