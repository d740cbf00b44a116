package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venore/training-api/internal/orchestrators/training"
)

var planFlags = struct {
	calcFlags
	target int
}{}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Weapons needed to reach a target skill level",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planFlags.vocation, "vocation", "", "character vocation (knight, paladin, sorcerer, druid, monk)")
	f.StringVar(&planFlags.skill, "skill", "", "skill category (magic, fist, club, sword, axe, distance, shielding)")
	f.IntVar(&planFlags.level, "from", 0, "current skill level")
	f.Float64Var(&planFlags.percent, "percent", 0, "percent already banked toward the next level")
	f.IntVar(&planFlags.target, "to", 0, "target skill level")
	f.IntVar(&planFlags.loyalty, "loyalty", 0, "loyalty bonus percent")
	f.BoolVar(&planFlags.double, "double", false, "double skill event active")
	f.BoolVar(&planFlags.dummy, "dummy", false, "training on a private dummy")
	f.BoolVar(&planFlags.vip, "vip", false, "VIP attack speed bonus")
	f.StringVar(&planFlags.weapon, "weapon", "", "weapon driving the time estimate (default: first catalog entry)")

	_ = planCmd.MarkFlagRequired("vocation")
	_ = planCmd.MarkFlagRequired("skill")
	_ = planCmd.MarkFlagRequired("from")
	_ = planCmd.MarkFlagRequired("to")
}

func runPlan(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	svc, err := buildService(tables)
	if err != nil {
		return err
	}

	vocation, category, progress, modifiers, err := planFlags.position()
	if err != nil {
		return err
	}

	resourceIndex, err := resolveResource(tables, planFlags.weapon)
	if err != nil {
		return err
	}

	out, err := svc.PlanWeapons(context.Background(), &training.PlanWeaponsInput{
		Category:      category,
		Vocation:      vocation,
		Current:       progress,
		TargetLevel:   planFlags.target,
		Modifiers:     modifiers,
		ResourceIndex: resourceIndex,
	})
	if err != nil {
		return err
	}
	if out.Plan == nil {
		fmt.Printf("No result: check that the target level (%d) is above the current level (%d) and the inputs are in range.\n",
			planFlags.target, planFlags.level)
		return nil
	}

	plan := out.Plan
	fmt.Printf("%s %s %d (%.2f%%) -> %d\n", vocation, category, progress.Level, progress.PercentToNext, planFlags.target)
	fmt.Printf("Total effort:  %.2f units\n", plan.TotalEffort)
	fmt.Printf("Total charges: %d\n", plan.TotalCharges)
	fmt.Printf("Estimated time (%s): %s\n", tables.Resources[resourceIndex].Name, plan.EstimatedTime)
	fmt.Println()
	fmt.Println("Weapons required (each type on its own):")
	for _, w := range plan.Weapons {
		fmt.Printf("  %-28s x%-6d %d gold\n", w.Name, w.Count, w.TotalGold)
	}

	return nil
}
