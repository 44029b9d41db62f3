// Package config provides YAML-based rule configuration and difficulty
// presets for the Flora & Fauna simulation.
package config

import "github.com/vovakirdan/florafauna/internal/ecosystem"

// EcosystemConfig contains all configuration for one simulation.
type EcosystemConfig struct {
	MaxTurns      int                 `yaml:"max_turns"`
	Initial       InitialPopulations  `yaml:"initial"`
	Growth        GrowthConfig        `yaml:"growth"`
	Interventions InterventionsConfig `yaml:"interventions"`
	Diet          DietConfig          `yaml:"diet"`
	Reproduction  ReproductionConfig  `yaml:"reproduction"`
	Events        EventsConfig        `yaml:"events"`
	Display       DisplayConfig       `yaml:"display"`
}

// InitialPopulations defines the starting counts.
type InitialPopulations struct {
	Plants     int `yaml:"plants"`
	Herbivores int `yaml:"herbivores"`
	Predators  int `yaml:"predators"`
}

// GrowthConfig defines producer growth per turn.
type GrowthConfig struct {
	Rate float64 `yaml:"rate"`
	Base int     `yaml:"base"`
}

// InterventionsConfig defines the effect of each player action.
type InterventionsConfig struct {
	Seeds                  int `yaml:"seeds"`
	SeedsPerBonusHerbivore int `yaml:"seeds_per_bonus_herbivore"`
	Herbivores             int `yaml:"herbivores"`
	Predators              int `yaml:"predators"`
}

// DietConfig defines per-capita food needs.
type DietConfig struct {
	HerbivoreNeed int `yaml:"herbivore_need"`
	PredatorNeed  int `yaml:"predator_need"`
}

// ReproductionConfig defines population-proportional growth of consumers.
type ReproductionConfig struct {
	HerbivoreRate float64 `yaml:"herbivore_rate"`
	PredatorRate  float64 `yaml:"predator_rate"`
}

// EventsConfig defines the random event bands, checked in declaration order.
type EventsConfig struct {
	Drought   LossEvent      `yaml:"drought"`
	Disease   LossEvent      `yaml:"disease"`
	Migration MigrationEvent `yaml:"migration"`
}

// LossEvent removes a fraction of a population.
type LossEvent struct {
	Chance float64 `yaml:"chance"`
	Loss   float64 `yaml:"loss"`
}

// MigrationEvent adds a small random number of predators.
type MigrationEvent struct {
	Chance   float64 `yaml:"chance"`
	MinBonus int     `yaml:"min_bonus"`
	MaxBonus int     `yaml:"max_bonus"`
}

// DisplayConfig holds renderer settings. Bars are scaled against these maxima.
type DisplayConfig struct {
	MaxPlants     int `yaml:"max_plants"`
	MaxHerbivores int `yaml:"max_herbivores"`
	MaxPredators  int `yaml:"max_predators"`
	LogLines      int `yaml:"log_lines"`
}

// Rules converts the configuration into simulator constants.
func (c EcosystemConfig) Rules() ecosystem.Rules {
	return ecosystem.Rules{
		MaxTurns: c.MaxTurns,

		InitialPlants:     c.Initial.Plants,
		InitialHerbivores: c.Initial.Herbivores,
		InitialPredators:  c.Initial.Predators,

		PlantGrowthRate: c.Growth.Rate,
		PlantGrowthBase: c.Growth.Base,

		SeedCount:              c.Interventions.Seeds,
		SeedsPerBonusHerbivore: c.Interventions.SeedsPerBonusHerbivore,
		HerbivoresAdded:        c.Interventions.Herbivores,
		PredatorsAdded:         c.Interventions.Predators,

		HerbivoreNeed: c.Diet.HerbivoreNeed,
		PredatorNeed:  c.Diet.PredatorNeed,

		HerbivoreReproduction: c.Reproduction.HerbivoreRate,
		PredatorReproduction:  c.Reproduction.PredatorRate,

		DroughtChance:   c.Events.Drought.Chance,
		DroughtLoss:     c.Events.Drought.Loss,
		DiseaseChance:   c.Events.Disease.Chance,
		DiseaseLoss:     c.Events.Disease.Loss,
		MigrationChance: c.Events.Migration.Chance,
		MigrationMin:    c.Events.Migration.MinBonus,
		MigrationMax:    c.Events.Migration.MaxBonus,
	}
}
