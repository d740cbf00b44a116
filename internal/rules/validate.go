package rules

import (
	"github.com/go-playground/validator/v10"

	"github.com/venore/training-api/internal/entities/game"
	"github.com/venore/training-api/internal/errors"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate runs the full validator pass over the tables: struct-level field
// checks, bracket coverage (no gaps, no overlaps, ordered, at most one
// open-ended bracket and only at the top), a complete vocation-rate matrix,
// and catalog sanity. Malformed configuration is caught here, before any
// calculation runs.
func (t *Tables) Validate() error {
	if err := structValidator.Struct(t); err != nil {
		return errors.Wrap(err, "rule table field validation failed")
	}

	vb := errors.NewValidationBuilder()

	t.validateBrackets(vb)
	t.validateVocationRates(vb)
	t.validateResources(vb)

	return vb.Build()
}

func (t *Tables) validateBrackets(vb *errors.ValidationBuilder) {
	for _, group := range []game.CategoryGroup{game.GroupMagic, game.GroupWeapon} {
		brackets, ok := t.Multipliers[group]
		field := "Multipliers." + string(group)
		if !ok || len(brackets) == 0 {
			vb.RequiredField(field)
			continue
		}

		if brackets[0].LevelFrom != 0 {
			vb.Fieldf(field, "first bracket must start at level 0, starts at %d", brackets[0].LevelFrom)
		}

		for i, b := range brackets {
			last := i == len(brackets)-1

			if b.LevelTo == 0 && !last {
				vb.Fieldf(field, "bracket %d is open-ended but not last", i)
				continue
			}
			if b.LevelTo != 0 && b.LevelTo < b.LevelFrom {
				vb.Fieldf(field, "bracket %d ends (%d) before it starts (%d)", i, b.LevelTo, b.LevelFrom)
			}
			if i > 0 {
				prev := brackets[i-1]
				switch {
				case b.LevelFrom <= prev.LevelTo:
					vb.Fieldf(field, "bracket %d overlaps bracket %d", i, i-1)
				case b.LevelFrom > prev.LevelTo+1:
					vb.Fieldf(field, "gap between level %d and %d", prev.LevelTo, b.LevelFrom)
				}
			}
		}
	}
}

func (t *Tables) validateVocationRates(vb *errors.ValidationBuilder) {
	for _, vocation := range game.Vocations() {
		rates, ok := t.VocationRates[vocation]
		if !ok {
			vb.Fieldf("VocationRates", "vocation %s has no rate table", vocation)
			continue
		}
		for _, category := range game.SkillCategories() {
			rate, ok := rates[category]
			if !ok {
				vb.Fieldf("VocationRates", "missing rate for %s/%s", vocation, category)
			} else if rate <= 0 {
				vb.Fieldf("VocationRates", "rate for %s/%s must be positive, got %g", vocation, category, rate)
			}
		}
	}
}

func (t *Tables) validateResources(vb *errors.ValidationBuilder) {
	seen := make(map[string]struct{}, len(t.Resources))
	for i, r := range t.Resources {
		if _, dup := seen[r.Name]; dup {
			vb.Fieldf("Resources", "duplicate resource name %q at index %d", r.Name, i)
		}
		seen[r.Name] = struct{}{}
	}
}
