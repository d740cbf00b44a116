package rules

import (
	"time"

	"github.com/venore/training-api/internal/entities/game"
)

// Default catalog values mirror the live game's exercise weapons: one charge
// every two seconds, consumed entirely before the item breaks.
const (
	defaultAttackInterval = 2 * time.Second

	// DefaultChargeYield is the effort one unmodified charge yields
	DefaultChargeYield = 1.0
)

// DefaultTables returns the built-in rule tables.
//
// The bracket multipliers and vocation rate constants model the published
// training-speed mechanics; operators can override any of them with a YAML
// table file (see Load).
func DefaultTables() *Tables {
	return &Tables{
		Multipliers: map[game.CategoryGroup][]Bracket{
			game.GroupMagic: {
				{LevelFrom: 0, LevelTo: 59, Multiplier: 1.0},
				{LevelFrom: 60, LevelTo: 79, Multiplier: 1.25},
				{LevelFrom: 80, LevelTo: 99, Multiplier: 1.5},
				{LevelFrom: 100, LevelTo: 109, Multiplier: 2.0},
				{LevelFrom: 110, LevelTo: 0, Multiplier: 3.0},
			},
			game.GroupWeapon: {
				{LevelFrom: 0, LevelTo: 69, Multiplier: 1.0},
				{LevelFrom: 70, LevelTo: 89, Multiplier: 1.1},
				{LevelFrom: 90, LevelTo: 109, Multiplier: 1.25},
				{LevelFrom: 110, LevelTo: 119, Multiplier: 1.5},
				{LevelFrom: 120, LevelTo: 0, Multiplier: 2.0},
			},
		},
		VocationRates: map[game.Vocation]map[game.SkillCategory]float64{
			game.VocationKnight: {
				game.SkillMagic:     3.0,
				game.SkillFist:      1.1,
				game.SkillClub:      1.1,
				game.SkillSword:     1.1,
				game.SkillAxe:       1.1,
				game.SkillDistance:  1.4,
				game.SkillShielding: 1.1,
			},
			game.VocationPaladin: {
				game.SkillMagic:     1.4,
				game.SkillFist:      1.2,
				game.SkillClub:      1.2,
				game.SkillSword:     1.2,
				game.SkillAxe:       1.2,
				game.SkillDistance:  1.1,
				game.SkillShielding: 1.1,
			},
			game.VocationSorcerer: {
				game.SkillMagic:     1.1,
				game.SkillFist:      1.5,
				game.SkillClub:      2.0,
				game.SkillSword:     2.0,
				game.SkillAxe:       2.0,
				game.SkillDistance:  2.0,
				game.SkillShielding: 1.5,
			},
			game.VocationDruid: {
				game.SkillMagic:     1.1,
				game.SkillFist:      1.5,
				game.SkillClub:      1.8,
				game.SkillSword:     1.8,
				game.SkillAxe:       1.8,
				game.SkillDistance:  2.0,
				game.SkillShielding: 1.5,
			},
			game.VocationMonk: {
				game.SkillMagic:     1.4,
				game.SkillFist:      1.1,
				game.SkillClub:      1.6,
				game.SkillSword:     1.6,
				game.SkillAxe:       1.6,
				game.SkillDistance:  2.0,
				game.SkillShielding: 1.1,
			},
		},
		Resources: []Resource{
			{
				Name:           "exercise weapon",
				Charges:        500,
				GoldCost:       262_500,
				AttackInterval: Duration(defaultAttackInterval),
			},
			{
				Name:           "durable exercise weapon",
				Charges:        1_800,
				GoldCost:       945_000,
				AttackInterval: Duration(defaultAttackInterval),
			},
			{
				Name:           "lasting exercise weapon",
				Charges:        14_400,
				GoldCost:       7_560_000,
				AttackInterval: Duration(defaultAttackInterval),
			},
		},
		ChargeYield: DefaultChargeYield,
	}
}
