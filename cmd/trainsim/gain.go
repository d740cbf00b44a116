package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/venore/training-api/internal/orchestrators/training"
)

var gainFlags = struct {
	calcFlags
	count int64
}{}

var gainCmd = &cobra.Command{
	Use:   "gain",
	Short: "Skill gained from spending a number of weapons",
	RunE:  runGain,
}

func init() {
	f := gainCmd.Flags()
	f.StringVar(&gainFlags.vocation, "vocation", "", "character vocation (knight, paladin, sorcerer, druid, monk)")
	f.StringVar(&gainFlags.skill, "skill", "", "skill category (magic, fist, club, sword, axe, distance, shielding)")
	f.IntVar(&gainFlags.level, "from", 0, "current skill level")
	f.Float64Var(&gainFlags.percent, "percent", 0, "percent already banked toward the next level")
	f.StringVar(&gainFlags.weapon, "weapon", "", "weapon type being spent (default: first catalog entry)")
	f.Int64Var(&gainFlags.count, "count", 0, "number of weapons to spend")
	f.IntVar(&gainFlags.loyalty, "loyalty", 0, "loyalty bonus percent")
	f.BoolVar(&gainFlags.double, "double", false, "double skill event active")
	f.BoolVar(&gainFlags.dummy, "dummy", false, "training on a private dummy")
	f.BoolVar(&gainFlags.vip, "vip", false, "VIP attack speed bonus")

	_ = gainCmd.MarkFlagRequired("vocation")
	_ = gainCmd.MarkFlagRequired("skill")
	_ = gainCmd.MarkFlagRequired("from")
	_ = gainCmd.MarkFlagRequired("count")
}

func runGain(cmd *cobra.Command, args []string) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	svc, err := buildService(tables)
	if err != nil {
		return err
	}

	vocation, category, progress, modifiers, err := gainFlags.position()
	if err != nil {
		return err
	}

	resourceIndex, err := resolveResource(tables, gainFlags.weapon)
	if err != nil {
		return err
	}

	out, err := svc.ProjectGain(context.Background(), &training.ProjectGainInput{
		Category:      category,
		Vocation:      vocation,
		ResourceIndex: resourceIndex,
		ResourceCount: gainFlags.count,
		Current:       progress,
		Modifiers:     modifiers,
	})
	if err != nil {
		return err
	}
	if out.Result == nil {
		fmt.Printf("No result: check that the count (%d) is at least 1 and the inputs are in range.\n", gainFlags.count)
		return nil
	}

	r := out.Result
	fmt.Printf("%s %s %d (%.2f%%) + %d x %s\n",
		vocation, category, progress.Level, progress.PercentToNext, gainFlags.count, tables.Resources[resourceIndex].Name)
	fmt.Printf("Final position: %d (%.2f%%)\n", r.FinalLevel, r.FinalPercent)
	fmt.Printf("Levels gained:  %d\n", r.LevelsGained)

	return nil
}
