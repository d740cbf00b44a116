package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venore/training-api/internal/entities/game"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a rule table file",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return fmt.Errorf("tables rejected: %w", err)
	}

	source := "built-in defaults"
	if tablesPath != "" {
		source = tablesPath
	}
	fmt.Printf("Tables OK (%s)\n", source)

	for _, group := range []game.CategoryGroup{game.GroupMagic, game.GroupWeapon} {
		brackets := tables.Multipliers[group]
		fmt.Printf("  %-8s %d multiplier brackets\n", group, len(brackets))
	}
	fmt.Printf("  %d vocations, %d skill categories\n", len(tables.VocationRates), len(game.SkillCategories()))
	fmt.Printf("  %d weapon types, charge yield %.2f\n", len(tables.Resources), tables.ChargeYield)

	return nil
}
