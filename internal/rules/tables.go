// Package rules holds the static configuration the training engine runs on:
// level-multiplier brackets, vocation rate constants, and the training
// resource catalog. Tables are data, loaded once and never mutated; the
// validator pass in validate.go catches malformed configuration before any
// calculation runs.
package rules

import (
	"time"

	"github.com/venore/training-api/internal/entities/game"
	"github.com/venore/training-api/internal/errors"
)

// Bracket is a contiguous span of levels sharing one multiplier value.
// A LevelTo of zero marks the bracket as open-ended at the top; only the
// final bracket of a table may be open-ended (validated at load time).
type Bracket struct {
	LevelFrom  int     `yaml:"level_from" validate:"min=0"`
	LevelTo    int     `yaml:"level_to" validate:"min=0"`
	Multiplier float64 `yaml:"multiplier" validate:"gt=0"`
}

// Contains reports whether level falls inside the bracket
func (b Bracket) Contains(level int) bool {
	if level < b.LevelFrom {
		return false
	}
	return b.LevelTo == 0 || level <= b.LevelTo
}

// Resource is one purchasable training item. Catalog entries are
// configuration, never created or destroyed at runtime.
type Resource struct {
	Name           string   `yaml:"name" validate:"required"`
	Charges        int64    `yaml:"charges" validate:"gt=0"`
	GoldCost       int64    `yaml:"gold_cost" validate:"min=0"`
	AttackInterval Duration `yaml:"attack_interval" validate:"gt=0"`
}

// Tables bundles every rule table the engine depends on
type Tables struct {
	// Multipliers holds one bracket table per category group. Magic has its
	// own table; all weapon and defense skills share the other.
	Multipliers map[game.CategoryGroup][]Bracket `yaml:"multipliers" validate:"required,dive,dive"`

	// VocationRates gives, per (vocation, category), the constant expressing
	// how quickly that vocation trains that category. Lower trains faster.
	VocationRates map[game.Vocation]map[game.SkillCategory]float64 `yaml:"vocation_rates" validate:"required"`

	// Resources is the training item catalog, in display order
	Resources []Resource `yaml:"resources" validate:"required,min=1,dive"`

	// ChargeYield is the effort yielded by one unmodified charge
	ChargeYield float64 `yaml:"charge_yield" validate:"gt=0"`
}

// LevelMultiplier resolves the multiplier bracket containing level for the
// category's group. A level outside every bracket is a table defect and
// fails loudly rather than extrapolating.
func (t *Tables) LevelMultiplier(category game.SkillCategory, level int) (float64, error) {
	group := category.Group()
	brackets, ok := t.Multipliers[group]
	if !ok {
		return 0, errors.FailedPreconditionf("no multiplier table configured for group %q", group)
	}

	for _, b := range brackets {
		if b.Contains(level) {
			return b.Multiplier, nil
		}
	}

	return 0, errors.OutOfRangef("level %d outside all %s multiplier brackets", level, group).
		WithMeta("level", level).
		WithMeta("group", string(group))
}

// VocationRate resolves the rate constant for a (vocation, category) pair.
// An undefined combination is a configuration error, never a zero-effort
// default — a silent zero would make training free.
func (t *Tables) VocationRate(vocation game.Vocation, category game.SkillCategory) (float64, error) {
	rates, ok := t.VocationRates[vocation]
	if !ok {
		return 0, errors.FailedPreconditionf("no training rates configured for vocation %q", vocation)
	}

	rate, ok := rates[category]
	if !ok {
		return 0, errors.FailedPreconditionf("no training rate configured for %s/%s", vocation, category)
	}

	return rate, nil
}

// ResourceAt returns the catalog entry at index i
func (t *Tables) ResourceAt(i int) (Resource, error) {
	if i < 0 || i >= len(t.Resources) {
		return Resource{}, errors.InvalidArgumentf("resource index %d out of range (catalog holds %d entries)", i, len(t.Resources))
	}
	return t.Resources[i], nil
}

// Interval returns the attack interval as a time.Duration
func (r Resource) Interval() time.Duration {
	return time.Duration(r.AttackInterval)
}
