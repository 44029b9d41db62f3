package florafauna

import (
	"github.com/vovakirdan/florafauna/internal/config"
	"github.com/vovakirdan/florafauna/internal/registry"
)

// DefaultScenario is played when no scenario is named.
const DefaultScenario = "meadow"

// Scenarios scale the loaded values rather than replace them, so difficulty
// presets and custom configs still shape every scenario.
func init() {
	registry.Register(registry.Scenario{
		ID:          "meadow",
		Title:       "Meadow",
		Description: "The standard rules: mild weather, rare events.",
	})

	registry.Register(registry.Scenario{
		ID:          "drylands",
		Title:       "Drylands",
		Description: "Frequent droughts and slower plant growth.",
		Apply: func(cfg *config.EcosystemConfig) {
			cfg.Growth.Rate = config.ScaleChance(cfg.Growth.Rate, 0.5)
			cfg.Events.Drought.Chance = config.ScaleChance(cfg.Events.Drought.Chance, 3)
			cfg.Events.Drought.Loss = config.ScaleChance(cfg.Events.Drought.Loss, 1.25)
		},
	})

	registry.Register(registry.Scenario{
		ID:          "wolfpack",
		Title:       "Wolf Pack",
		Description: "Predators migrate in often and in bigger groups.",
		Apply: func(cfg *config.EcosystemConfig) {
			cfg.Events.Migration.Chance = config.ScaleChance(cfg.Events.Migration.Chance, 5)
			cfg.Events.Migration.MaxBonus++
		},
	})

	registry.Register(registry.Scenario{
		ID:          "sanctuary",
		Title:       "Sanctuary",
		Description: "No random events; only your choices shape the food chain.",
		Apply: func(cfg *config.EcosystemConfig) {
			cfg.Events.Drought.Chance = 0
			cfg.Events.Disease.Chance = 0
			cfg.Events.Migration.Chance = 0
		},
	})
}
