// Package training implements the caller-facing orchestrator around the
// simulation engine. It maps domain-invalid input onto the "no result"
// sentinel the UI expects, memoizes computed weapon plans, and keeps
// configuration defects loud.
package training

//go:generate mockgen -destination=mock/mock_service.go -package=trainingmock github.com/venore/training-api/internal/orchestrators/training Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/venore/training-api/internal/engine"
	"github.com/venore/training-api/internal/errors"
	plancache "github.com/venore/training-api/internal/repositories/plan_cache"
)

// Service defines the interface for training calculations
type Service interface {
	// PlanWeapons answers "how many of each training item to reach the target"
	PlanWeapons(ctx context.Context, input *PlanWeaponsInput) (*PlanWeaponsOutput, error)

	// ProjectGain answers "where does this purchase leave me"
	ProjectGain(ctx context.Context, input *ProjectGainInput) (*ProjectGainOutput, error)
}

// Config holds the dependencies for the training orchestrator
type Config struct {
	Engine engine.Engine

	// PlanCache is optional; without it every plan is computed fresh
	PlanCache plancache.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	engine    engine.Engine
	planCache plancache.Repository
}

// NewOrchestrator creates a new training orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:    cfg.Engine,
		planCache: cfg.PlanCache,
	}, nil
}

// PlanWeapons resolves a weapon plan, consulting the cache first. Cache
// failures are logged and bypassed; they must never change a result.
func (o *orchestrator) PlanWeapons(ctx context.Context, input *PlanWeaponsInput) (*PlanWeaponsOutput, error) {
	key := planKey(input)

	if o.planCache != nil {
		cached, err := o.planCache.Get(ctx, plancache.GetInput{Key: key})
		switch {
		case err == nil:
			slog.Debug("Plan served from cache", "key", key)
			return &PlanWeaponsOutput{Plan: cached.Cached.Plan, FromCache: true}, nil
		case !errors.IsNotFound(err):
			slog.Warn("Plan cache lookup failed, computing fresh", "key", key, "error", err)
		}
	}

	plan, err := o.engine.CalculateWeaponsNeeded(ctx, &engine.CalculateWeaponsNeededInput{
		Category:      input.Category,
		Vocation:      input.Vocation,
		Current:       input.Current,
		TargetLevel:   input.TargetLevel,
		Modifiers:     input.Modifiers,
		ResourceIndex: input.ResourceIndex,
	})
	if err != nil {
		if errors.IsInvalidArgument(err) {
			slog.Info("No plan for out-of-domain input",
				"vocation", input.Vocation,
				"category", input.Category,
				"target_level", input.TargetLevel,
				"reason", err,
			)
			return &PlanWeaponsOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to calculate weapons needed")
	}

	if o.planCache != nil {
		if err := o.planCache.Set(ctx, plancache.SetInput{Key: key, Plan: plan}); err != nil {
			slog.Warn("Failed to cache plan", "key", key, "error", err)
		}
	}

	slog.Info("Weapon plan computed",
		"vocation", input.Vocation,
		"category", input.Category,
		"target_level", input.TargetLevel,
		"total_charges", plan.TotalCharges,
	)

	return &PlanWeaponsOutput{Plan: plan}, nil
}

// ProjectGain resolves a forward projection. Projections are cheap and
// uncached.
func (o *orchestrator) ProjectGain(ctx context.Context, input *ProjectGainInput) (*ProjectGainOutput, error) {
	result, err := o.engine.CalculateSkillGain(ctx, &engine.CalculateSkillGainInput{
		Category:      input.Category,
		Vocation:      input.Vocation,
		ResourceIndex: input.ResourceIndex,
		ResourceCount: input.ResourceCount,
		Current:       input.Current,
		Modifiers:     input.Modifiers,
	})
	if err != nil {
		if errors.IsInvalidArgument(err) {
			slog.Info("No projection for out-of-domain input",
				"vocation", input.Vocation,
				"category", input.Category,
				"resource_count", input.ResourceCount,
				"reason", err,
			)
			return &ProjectGainOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to calculate skill gain")
	}

	return &ProjectGainOutput{Result: result}, nil
}

// planKey derives the deterministic cache key for a plan request. Every field
// that can change the plan participates; VIP participates too because it
// changes the time estimate stored alongside the counts.
func planKey(input *PlanWeaponsInput) string {
	return fmt.Sprintf("%s:%s:%d:%g:%d:%d:%t:%t:%t:%d",
		input.Vocation,
		input.Category,
		input.Current.Level,
		input.Current.PercentToNext,
		input.TargetLevel,
		input.Modifiers.LoyaltyPercent,
		input.Modifiers.DoubleEvent,
		input.Modifiers.PrivateDummy,
		input.Modifiers.VIP,
		input.ResourceIndex,
	)
}
