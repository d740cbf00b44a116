// Package plancache provides repository interface and types for caching
// computed weapon plans. Caching is an optimization layered outside the pure
// engine: a cache may lose entries or be absent entirely without changing any
// result, only the cost of recomputing it.
package plancache

import (
	"context"
	"time"

	"github.com/venore/training-api/internal/engine"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=plancachemock github.com/venore/training-api/internal/repositories/plan_cache Repository

// CachedPlan is a stored weapon plan with its creation time
type CachedPlan struct {
	Plan     *engine.CalculateWeaponsNeededOutput
	CachedAt time.Time
}

// GetInput contains parameters for retrieving a cached plan
type GetInput struct {
	// Key is the deterministic digest of the full request tuple
	Key string
}

// GetOutput contains the result of retrieving a cached plan
type GetOutput struct {
	Cached *CachedPlan
}

// SetInput contains parameters for storing a plan
type SetInput struct {
	Key  string
	Plan *engine.CalculateWeaponsNeededOutput
	TTL  time.Duration
}

// Repository defines the interface for plan cache storage operations
type Repository interface {
	// Get retrieves a cached plan by key; NotFound when absent or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a plan under key with the specified TTL
	Set(ctx context.Context, input SetInput) error
}
