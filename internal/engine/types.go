package engine

import (
	"time"

	"github.com/venore/training-api/internal/entities/game"
)

// CalculateWeaponsNeededInput contains the inverse solver's arguments
type CalculateWeaponsNeededInput struct {
	Category game.SkillCategory
	Vocation game.Vocation

	// Current is the caller's position within training
	Current game.Progress

	// TargetLevel must be strictly above Current.Level
	TargetLevel int

	Modifiers game.Modifiers

	// ResourceIndex selects the catalog entry driving the time estimate.
	// The per-resource breakdown always covers the whole catalog.
	ResourceIndex int
}

// WeaponCount reports how many units of one resource type alone would be
// required. Counts are independent what-if alternatives per resource, not a
// combined allocation.
type WeaponCount struct {
	Name      string
	Count     int64
	TotalGold int64
}

// CalculateWeaponsNeededOutput contains the inverse solver's result
type CalculateWeaponsNeededOutput struct {
	// TotalEffort is the abstract effort between current position and target
	TotalEffort float64

	// TotalCharges is the rounded-up charge count needed under the active
	// efficiency modifiers. VIP never changes it.
	TotalCharges int64

	Weapons []WeaponCount

	// EstimatedTime is TotalCharges paced at the selected resource's attack
	// interval, shortened by VIP. The only place speed modifiers apply.
	EstimatedTime time.Duration
}

// CalculateSkillGainInput contains the forward solver's arguments
type CalculateSkillGainInput struct {
	Category game.SkillCategory
	Vocation game.Vocation

	// ResourceIndex references a catalog entry
	ResourceIndex int

	// ResourceCount must be at least 1
	ResourceCount int64

	Current   game.Progress
	Modifiers game.Modifiers
}

// CalculateSkillGainOutput contains the forward solver's result
type CalculateSkillGainOutput struct {
	FinalLevel   int
	FinalPercent float64
	LevelsGained int
}
