package engine

import (
	"context"
	"math"
	"time"

	"github.com/venore/training-api/internal/entities/game"
	"github.com/venore/training-api/internal/errors"
	"github.com/venore/training-api/internal/rules"
)

// maxSimulatedLevel caps the level walk when the top multiplier bracket is
// open-ended, so an absurd effort figure cannot loop unbounded.
const maxSimulatedLevel = 5000

// Config holds the dependencies for the engine
type Config struct {
	Tables *rules.Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}

	return vb.Build()
}

type engine struct {
	tables *rules.Tables
}

// New creates an engine bound to validated rule tables
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.Tables.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid rule tables")
	}

	return &engine{tables: cfg.Tables}, nil
}

// Ensure engine implements Engine
var _ Engine = (*engine)(nil)

// CalculateWeaponsNeeded solves current position + target level into resource
// counts, total effort, and a time estimate
func (e *engine) CalculateWeaponsNeeded(
	_ context.Context,
	input *CalculateWeaponsNeededInput,
) (*CalculateWeaponsNeededOutput, error) {
	current, err := validatePosition(input.Category, input.Vocation, input.Current, input.Modifiers)
	if err != nil {
		return nil, err
	}
	if input.TargetLevel <= current.Level {
		return nil, errors.InvalidArgumentf(
			"target level %d must exceed current level %d", input.TargetLevel, current.Level)
	}

	resource, err := e.tables.ResourceAt(input.ResourceIndex)
	if err != nil {
		return nil, err
	}

	totalEffort, err := e.effortToLevel(input.Category, input.Vocation, current, input.TargetLevel)
	if err != nil {
		return nil, err
	}

	// Efficiency modifiers shrink the charge count; VIP must not.
	effortPerCharge := e.tables.ChargeYield * input.Modifiers.EfficiencyFactor()
	totalCharges := int64(math.Ceil(totalEffort / effortPerCharge))

	weapons := make([]WeaponCount, len(e.tables.Resources))
	for i, r := range e.tables.Resources {
		count := ceilDiv(totalCharges, r.Charges)
		weapons[i] = WeaponCount{
			Name:      r.Name,
			Count:     count,
			TotalGold: count * r.GoldCost,
		}
	}

	seconds := float64(totalCharges) * resource.Interval().Seconds() / input.Modifiers.SpeedFactor()
	estimated := time.Duration(seconds * float64(time.Second))

	return &CalculateWeaponsNeededOutput{
		TotalEffort:   totalEffort,
		TotalCharges:  totalCharges,
		Weapons:       weapons,
		EstimatedTime: estimated,
	}, nil
}

// CalculateSkillGain solves a resource purchase into the resulting position
func (e *engine) CalculateSkillGain(
	_ context.Context,
	input *CalculateSkillGainInput,
) (*CalculateSkillGainOutput, error) {
	current, err := validatePosition(input.Category, input.Vocation, input.Current, input.Modifiers)
	if err != nil {
		return nil, err
	}
	if input.ResourceCount < 1 {
		return nil, errors.InvalidArgumentf("resource count must be at least 1, got %d", input.ResourceCount)
	}

	resource, err := e.tables.ResourceAt(input.ResourceIndex)
	if err != nil {
		return nil, err
	}

	totalCharges := float64(input.ResourceCount) * float64(resource.Charges)
	effortPerCharge := e.tables.ChargeYield * input.Modifiers.EfficiencyFactor()
	totalEffort := totalCharges * effortPerCharge

	final, err := e.applyEffort(input.Category, input.Vocation, current, totalEffort)
	if err != nil {
		return nil, err
	}

	return &CalculateSkillGainOutput{
		FinalLevel:   final.Level,
		FinalPercent: final.PercentToNext,
		LevelsGained: final.Level - current.Level,
	}, nil
}

// validatePosition normalizes and checks the caller-supplied arguments shared
// by both solvers
func validatePosition(
	category game.SkillCategory,
	vocation game.Vocation,
	current game.Progress,
	modifiers game.Modifiers,
) (game.Progress, error) {
	if !category.IsValid() {
		return game.Progress{}, errors.InvalidArgumentf("unknown skill category %q", category)
	}
	if !vocation.IsValid() {
		return game.Progress{}, errors.InvalidArgumentf("unknown vocation %q", vocation)
	}

	current = current.Normalize()
	if !current.IsValid() {
		return game.Progress{}, errors.InvalidArgumentf(
			"progress out of domain: level %d, percent %g", current.Level, current.PercentToNext)
	}
	if !modifiers.IsValid() {
		return game.Progress{}, errors.InvalidArgumentf(
			"loyalty percent must be non-negative, got %d", modifiers.LoyaltyPercent)
	}

	return current, nil
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
