package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// eventScaleForPreset returns the multiplier applied to random event chances.
func eventScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// ApplyEcosystemPreset modifies the config based on a difficulty preset.
// Only event bands and losses change; the starting populations never do.
func ApplyEcosystemPreset(cfg *EcosystemConfig, preset DifficultyPreset) {
	scale := eventScaleForPreset(preset)
	cfg.Events.Drought.Chance = ScaleChance(cfg.Events.Drought.Chance, scale)
	cfg.Events.Disease.Chance = ScaleChance(cfg.Events.Disease.Chance, scale)
	cfg.Events.Migration.Chance = ScaleChance(cfg.Events.Migration.Chance, scale)

	if preset == DifficultyHard {
		cfg.Events.Drought.Loss = ScaleChance(cfg.Events.Drought.Loss, 1.5)
		cfg.Events.Disease.Loss = ScaleChance(cfg.Events.Disease.Loss, 1.5)
	}

	// Keep the bands inside [0, 1)
	total := cfg.Events.Drought.Chance + cfg.Events.Disease.Chance + cfg.Events.Migration.Chance
	if total > 1 {
		cfg.Events.Drought.Chance /= total
		cfg.Events.Disease.Chance /= total
		cfg.Events.Migration.Chance /= total
	}
}

// ScaleChance multiplies a probability or loss fraction, capped at 1.
func ScaleChance(v, factor float64) float64 {
	return roundChance(math.Min(v*factor, 1))
}

// roundChance trims float noise so scaled bands stay readable in YAML dumps.
func roundChance(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
