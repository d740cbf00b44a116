package rules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venore/training-api/internal/entities/game"
	"github.com/venore/training-api/internal/errors"
)

func TestDefaultTables_Valid(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestLevelMultiplier_BracketLookup(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name     string
		category game.SkillCategory
		level    int
		want     float64
	}{
		{"magic low", game.SkillMagic, 0, 1.0},
		{"magic bracket edge low", game.SkillMagic, 60, 1.25},
		{"magic bracket edge high", game.SkillMagic, 79, 1.25},
		{"magic open-ended top", game.SkillMagic, 500, 3.0},
		{"sword low", game.SkillSword, 15, 1.0},
		{"sword mid", game.SkillSword, 95, 1.25},
		{"distance shares weapon table", game.SkillDistance, 115, 1.5},
		{"shielding open-ended top", game.SkillShielding, 121, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tables.LevelMultiplier(tt.category, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelMultiplier_Exhaustion(t *testing.T) {
	tables := DefaultTables()
	// Close the weapon table at 119 so levels beyond it have no bracket.
	weapon := tables.Multipliers[game.GroupWeapon]
	tables.Multipliers[game.GroupWeapon] = weapon[:len(weapon)-1]

	_, err := tables.LevelMultiplier(game.SkillSword, 200)
	require.Error(t, err)
	assert.True(t, errors.IsOutOfRange(err))
}

func TestVocationRate(t *testing.T) {
	tables := DefaultTables()

	rate, err := tables.VocationRate(game.VocationKnight, game.SkillSword)
	require.NoError(t, err)
	assert.Equal(t, 1.1, rate)

	rate, err = tables.VocationRate(game.VocationKnight, game.SkillMagic)
	require.NoError(t, err)
	assert.Equal(t, 3.0, rate)
}

func TestVocationRate_MissingCombination(t *testing.T) {
	tables := DefaultTables()
	delete(tables.VocationRates[game.VocationMonk], game.SkillAxe)

	_, err := tables.VocationRate(game.VocationMonk, game.SkillAxe)
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err), "undefined combinations must fail, not default to zero")
}

func TestResourceAt(t *testing.T) {
	tables := DefaultTables()

	r, err := tables.ResourceAt(1)
	require.NoError(t, err)
	assert.Equal(t, "durable exercise weapon", r.Name)
	assert.Equal(t, int64(1800), r.Charges)
	assert.Equal(t, 2*time.Second, r.Interval())

	_, err = tables.ResourceAt(-1)
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = tables.ResourceAt(len(tables.Resources))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate_BracketDefects(t *testing.T) {
	tests := []struct {
		name     string
		brackets []Bracket
		wantMsg  string
	}{
		{
			name: "gap between brackets",
			brackets: []Bracket{
				{LevelFrom: 0, LevelTo: 50, Multiplier: 1.0},
				{LevelFrom: 60, LevelTo: 0, Multiplier: 2.0},
			},
			wantMsg: "gap",
		},
		{
			name: "overlapping brackets",
			brackets: []Bracket{
				{LevelFrom: 0, LevelTo: 60, Multiplier: 1.0},
				{LevelFrom: 50, LevelTo: 0, Multiplier: 2.0},
			},
			wantMsg: "overlaps",
		},
		{
			name: "open-ended bracket not last",
			brackets: []Bracket{
				{LevelFrom: 0, LevelTo: 0, Multiplier: 1.0},
				{LevelFrom: 10, LevelTo: 20, Multiplier: 2.0},
			},
			wantMsg: "open-ended",
		},
		{
			name: "first bracket starts late",
			brackets: []Bracket{
				{LevelFrom: 10, LevelTo: 0, Multiplier: 1.0},
			},
			wantMsg: "start at level 0",
		},
		{
			name: "bracket ends before it starts",
			brackets: []Bracket{
				{LevelFrom: 0, LevelTo: 40, Multiplier: 1.0},
				{LevelFrom: 41, LevelTo: 30, Multiplier: 2.0},
			},
			wantMsg: "before it starts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables := DefaultTables()
			tables.Multipliers[game.GroupWeapon] = tt.brackets

			err := tables.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_NonPositiveRate(t *testing.T) {
	tables := DefaultTables()
	tables.VocationRates[game.VocationDruid][game.SkillClub] = 0

	err := tables.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "druid/club")
}

func TestValidate_DuplicateResource(t *testing.T) {
	tables := DefaultTables()
	tables.Resources = append(tables.Resources, tables.Resources[0])

	err := tables.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate resource")
}

func TestValidate_FieldTags(t *testing.T) {
	tables := DefaultTables()
	tables.ChargeYield = 0

	require.Error(t, tables.Validate())
}

func TestLoad_OverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")

	override := `
charge_yield: 2.5
resources:
  - name: training dummy token
    charges: 100
    gold_cost: 50000
    attack_interval: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	tables, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, tables.ChargeYield)
	require.Len(t, tables.Resources, 1)
	assert.Equal(t, "training dummy token", tables.Resources[0].Name)
	assert.Equal(t, 3*time.Second, tables.Resources[0].Interval())

	// Untouched sections keep defaults.
	rate, err := tables.VocationRate(game.VocationKnight, game.SkillSword)
	require.NoError(t, err)
	assert.Equal(t, 1.1, rate)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.yaml")

	override := `
multipliers:
  weapon:
    - {level_from: 0, level_to: 50, multiplier: 1.0}
    - {level_from: 60, level_to: 0, multiplier: 2.0}
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
