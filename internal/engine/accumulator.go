package engine

import (
	"github.com/venore/training-api/internal/entities/game"
	"github.com/venore/training-api/internal/errors"
	"github.com/venore/training-api/internal/rules"
)

// The effort accumulator is the atomic building block both solvers share.
// Both directions iterate the identical per-level costs in the identical
// order, so applying the effort a span reports lands exactly back on the
// span's endpoint despite floating-point accumulation.

// levelCost is the effort to train level from 0% to 100%
func levelCost(tables *rules.Tables, category game.SkillCategory, rate float64, level int) (float64, error) {
	multiplier, err := tables.LevelMultiplier(category, level)
	if err != nil {
		return 0, err
	}
	return rate * multiplier, nil
}

// effortToLevel sums the effort between from and toLevel, bracket by bracket.
// The starting level's contribution is reduced by the percent already banked.
// A non-advancing target is zero effort; callers wanting an error reject it
// before calling.
func (e *engine) effortToLevel(
	category game.SkillCategory,
	vocation game.Vocation,
	from game.Progress,
	toLevel int,
) (float64, error) {
	rate, err := e.tables.VocationRate(vocation, category)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for level := from.Level; level < toLevel; level++ {
		cost, err := levelCost(e.tables, category, rate, level)
		if err != nil {
			return 0, err
		}
		if level == from.Level {
			cost *= 1 - from.PercentToNext/100
		}
		total += cost
	}

	return total, nil
}

// applyEffort consumes effort starting at from, advancing across as many
// whole levels as the effort allows, and expresses the remainder as a
// percent of the next level.
func (e *engine) applyEffort(
	category game.SkillCategory,
	vocation game.Vocation,
	from game.Progress,
	effort float64,
) (game.Progress, error) {
	if effort < 0 {
		return game.Progress{}, errors.InvalidArgumentf("effort must be non-negative, got %g", effort)
	}

	rate, err := e.tables.VocationRate(vocation, category)
	if err != nil {
		return game.Progress{}, err
	}

	level := from.Level
	consumed := 0.0
	for {
		if level >= maxSimulatedLevel {
			return game.Progress{}, errors.OutOfRangef(
				"effort %g advances past the simulation ceiling of level %d", effort, maxSimulatedLevel)
		}

		cost, err := levelCost(e.tables, category, rate, level)
		if err != nil {
			return game.Progress{}, err
		}

		// Mirror effortToLevel's first-term reduction exactly.
		effective := cost
		if level == from.Level {
			effective = cost * (1 - from.PercentToNext/100)
		}

		if consumed+effective > effort {
			remaining := effort - consumed
			percent := remaining / cost * 100
			if level == from.Level {
				percent += from.PercentToNext
			}
			return game.Progress{Level: level, PercentToNext: percent}, nil
		}

		consumed += effective
		level++

		// Exact arrival: nothing banked toward the next level, so its
		// bracket need not even exist.
		if consumed == effort {
			return game.Progress{Level: level}, nil
		}
	}
}
