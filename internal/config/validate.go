package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that the configuration describes a playable simulation.
func (c EcosystemConfig) Validate() error {
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns must be at least 1, got %d", ErrInvalidConfig, c.MaxTurns)
	}

	ints := []struct {
		name  string
		value int
	}{
		{"initial.plants", c.Initial.Plants},
		{"initial.herbivores", c.Initial.Herbivores},
		{"initial.predators", c.Initial.Predators},
		{"growth.base", c.Growth.Base},
		{"interventions.seeds", c.Interventions.Seeds},
		{"interventions.seeds_per_bonus_herbivore", c.Interventions.SeedsPerBonusHerbivore},
		{"interventions.herbivores", c.Interventions.Herbivores},
		{"interventions.predators", c.Interventions.Predators},
		{"diet.herbivore_need", c.Diet.HerbivoreNeed},
		{"diet.predator_need", c.Diet.PredatorNeed},
		{"events.migration.min_bonus", c.Events.Migration.MinBonus},
		{"display.max_plants", c.Display.MaxPlants},
		{"display.max_herbivores", c.Display.MaxHerbivores},
		{"display.max_predators", c.Display.MaxPredators},
		{"display.log_lines", c.Display.LogLines},
	}
	for _, f := range ints {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, f.name, f.value)
		}
	}

	fractions := []struct {
		name  string
		value float64
	}{
		{"growth.rate", c.Growth.Rate},
		{"reproduction.herbivore_rate", c.Reproduction.HerbivoreRate},
		{"reproduction.predator_rate", c.Reproduction.PredatorRate},
		{"events.drought.chance", c.Events.Drought.Chance},
		{"events.drought.loss", c.Events.Drought.Loss},
		{"events.disease.chance", c.Events.Disease.Chance},
		{"events.disease.loss", c.Events.Disease.Loss},
		{"events.migration.chance", c.Events.Migration.Chance},
	}
	for _, f := range fractions {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%w: %s must be within [0, 1], got %g", ErrInvalidConfig, f.name, f.value)
		}
	}

	total := c.Events.Drought.Chance + c.Events.Disease.Chance + c.Events.Migration.Chance
	if total > 1 {
		return fmt.Errorf("%w: event chances sum to %g, must not exceed 1", ErrInvalidConfig, total)
	}

	if c.Events.Migration.MaxBonus < c.Events.Migration.MinBonus {
		return fmt.Errorf("%w: events.migration.max_bonus %d is below min_bonus %d",
			ErrInvalidConfig, c.Events.Migration.MaxBonus, c.Events.Migration.MinBonus)
	}

	return nil
}
