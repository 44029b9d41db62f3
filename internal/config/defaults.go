package config

import (
	_ "embed"
)

//go:embed defaults/ecosystem.yaml
var defaultEcosystemYAML []byte

// DefaultEcosystemConfig returns the default Flora & Fauna configuration.
func DefaultEcosystemConfig() EcosystemConfig {
	return EcosystemConfig{
		MaxTurns: 30,
		Initial: InitialPopulations{
			Plants:     50,
			Herbivores: 10,
			Predators:  3,
		},
		Growth: GrowthConfig{
			Rate: 0.10,
			Base: 5,
		},
		Interventions: InterventionsConfig{
			Seeds:                  10,
			SeedsPerBonusHerbivore: 10,
			Herbivores:             2,
			Predators:              1,
		},
		Diet: DietConfig{
			HerbivoreNeed: 2,
			PredatorNeed:  1,
		},
		Reproduction: ReproductionConfig{
			HerbivoreRate: 0.20,
			PredatorRate:  0.10,
		},
		Events: EventsConfig{
			Drought:   LossEvent{Chance: 0.05, Loss: 0.20},
			Disease:   LossEvent{Chance: 0.03, Loss: 0.30},
			Migration: MigrationEvent{Chance: 0.02, MinBonus: 1, MaxBonus: 2},
		},
		Display: DisplayConfig{
			MaxPlants:     200,
			MaxHerbivores: 50,
			MaxPredators:  20,
			LogLines:      6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEcosystemYAML
}
