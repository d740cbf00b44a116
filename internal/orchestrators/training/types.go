package training

import (
	"github.com/venore/training-api/internal/engine"
	"github.com/venore/training-api/internal/entities/game"
)

// PlanWeaponsInput contains a caller's "how many weapons to reach X" request
type PlanWeaponsInput struct {
	Category    game.SkillCategory
	Vocation    game.Vocation
	Current     game.Progress
	TargetLevel int
	Modifiers   game.Modifiers

	// ResourceIndex selects the catalog entry driving the time estimate
	ResourceIndex int
}

// PlanWeaponsOutput contains the resolved plan. A nil Plan is the "no result"
// sentinel: the inputs were out of domain and the caller should render
// nothing rather than treat it as a failure.
type PlanWeaponsOutput struct {
	Plan *engine.CalculateWeaponsNeededOutput

	// FromCache reports whether the plan was served from the cache
	FromCache bool
}

// ProjectGainInput contains a caller's "what will N weapons get me" request
type ProjectGainInput struct {
	Category      game.SkillCategory
	Vocation      game.Vocation
	ResourceIndex int
	ResourceCount int64
	Current       game.Progress
	Modifiers     game.Modifiers
}

// ProjectGainOutput contains the projected result; nil Result is the
// "no result" sentinel
type ProjectGainOutput struct {
	Result *engine.CalculateSkillGainOutput
}
