// Package engine implements the skill training simulation: the effort
// accumulator plus the forward solver (resources in, progress out) and the
// inverse solver (target in, resources out). Every operation is a pure
// function over its arguments and the rule tables bound at construction.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/venore/training-api/internal/engine Engine

import (
	"context"
)

// Engine answers the two inverse questions a player asks: what will N
// training items get me, and how many items do I need to reach level X.
type Engine interface {
	// CalculateWeaponsNeeded solves target level -> resource counts, total
	// effort, and a wall-clock estimate
	CalculateWeaponsNeeded(
		ctx context.Context,
		input *CalculateWeaponsNeededInput,
	) (*CalculateWeaponsNeededOutput, error)

	// CalculateSkillGain solves resource selection -> resulting level and
	// fractional progress
	CalculateSkillGain(
		ctx context.Context,
		input *CalculateSkillGainInput,
	) (*CalculateSkillGainOutput, error)
}
