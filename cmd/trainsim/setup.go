package main

import (
	"fmt"
	"strings"

	"github.com/venore/training-api/internal/engine"
	"github.com/venore/training-api/internal/entities/game"
	"github.com/venore/training-api/internal/orchestrators/training"
	"github.com/venore/training-api/internal/pkg/clock"
	plancache "github.com/venore/training-api/internal/repositories/plan_cache"
	"github.com/venore/training-api/internal/rules"
)

// calcFlags are the flags shared by plan and gain
type calcFlags struct {
	vocation string
	skill    string
	level    int
	percent  float64
	loyalty  int
	double   bool
	dummy    bool
	vip      bool
	weapon   string
}

func loadTables() (*rules.Tables, error) {
	if tablesPath != "" {
		return rules.Load(tablesPath)
	}

	tables := rules.DefaultTables()
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return tables, nil
}

func buildService(tables *rules.Tables) (training.Service, error) {
	eng, err := engine.New(&engine.Config{Tables: tables})
	if err != nil {
		return nil, err
	}

	cache, err := plancache.NewLRURepository(&plancache.LRUConfig{Clock: clock.New()})
	if err != nil {
		return nil, err
	}

	return training.NewOrchestrator(&training.Config{
		Engine:    eng,
		PlanCache: cache,
	})
}

func (f *calcFlags) position() (game.Vocation, game.SkillCategory, game.Progress, game.Modifiers, error) {
	vocation, err := game.ParseVocation(f.vocation)
	if err != nil {
		return "", "", game.Progress{}, game.Modifiers{}, err
	}

	category, err := game.ParseSkillCategory(f.skill)
	if err != nil {
		return "", "", game.Progress{}, game.Modifiers{}, err
	}

	progress := game.Progress{Level: f.level, PercentToNext: f.percent}
	modifiers := game.Modifiers{
		LoyaltyPercent: f.loyalty,
		DoubleEvent:    f.double,
		PrivateDummy:   f.dummy,
		VIP:            f.vip,
	}

	return vocation, category, progress, modifiers, nil
}

// resolveResource maps a --weapon name onto its catalog index; an empty name
// selects the first entry. A unique substring of a catalog name works too, so
// "durable" finds "durable exercise weapon".
func resolveResource(tables *rules.Tables, name string) (int, error) {
	if name == "" {
		return 0, nil
	}

	names := make([]string, len(tables.Resources))
	for i, r := range tables.Resources {
		names[i] = r.Name
	}

	match := -1
	for i, r := range tables.Resources {
		if strings.EqualFold(r.Name, name) {
			return i, nil
		}
		if strings.Contains(strings.ToLower(r.Name), strings.ToLower(name)) {
			if match >= 0 {
				return 0, fmt.Errorf("ambiguous weapon %q (catalog: %s)", name, strings.Join(names, ", "))
			}
			match = i
		}
	}
	if match >= 0 {
		return match, nil
	}

	return 0, fmt.Errorf("unknown weapon %q (catalog: %s)", name, strings.Join(names, ", "))
}
