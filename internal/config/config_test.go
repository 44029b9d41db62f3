package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/florafauna/internal/ecosystem"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultEcosystemConfig() {
		t.Errorf("embedded YAML differs from DefaultEcosystemConfig():\n%+v\n%+v", cfg, DefaultEcosystemConfig())
	}
}

func TestDefaultRulesMatchSimulator(t *testing.T) {
	if got := DefaultEcosystemConfig().Rules(); got != ecosystem.DefaultRules() {
		t.Errorf("Rules() = %+v, want %+v", got, ecosystem.DefaultRules())
	}
}

func TestLoadEcosystemCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("max_turns: 12\nevents:\n  drought:\n    chance: 0.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadEcosystem(path)
	if err != nil {
		t.Fatalf("LoadEcosystem() failed: %v", err)
	}

	if cfg.MaxTurns != 12 {
		t.Errorf("MaxTurns = %d, want 12", cfg.MaxTurns)
	}
	if cfg.Events.Drought.Chance != 0.5 {
		t.Errorf("Drought.Chance = %v, want 0.5", cfg.Events.Drought.Chance)
	}
	// Keys missing from the file keep their defaults
	if cfg.Events.Drought.Loss != 0.20 {
		t.Errorf("Drought.Loss = %v, want default 0.20", cfg.Events.Drought.Loss)
	}
	if cfg.Initial.Plants != 50 {
		t.Errorf("Initial.Plants = %d, want default 50", cfg.Initial.Plants)
	}
}

func TestLoadEcosystemMissingCustomPath(t *testing.T) {
	_, err := LoadEcosystem(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadEcosystemRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_turns: 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := LoadEcosystem(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadEcosystem() error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EcosystemConfig)
	}{
		{"zero turns", func(c *EcosystemConfig) { c.MaxTurns = 0 }},
		{"negative plants", func(c *EcosystemConfig) { c.Initial.Plants = -1 }},
		{"negative need", func(c *EcosystemConfig) { c.Diet.PredatorNeed = -2 }},
		{"rate above one", func(c *EcosystemConfig) { c.Growth.Rate = 1.5 }},
		{"bands over one", func(c *EcosystemConfig) {
			c.Events.Drought.Chance = 0.6
			c.Events.Disease.Chance = 0.5
		}},
		{"migration range inverted", func(c *EcosystemConfig) {
			c.Events.Migration.MinBonus = 3
			c.Events.Migration.MaxBonus = 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEcosystemConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	if err := DefaultEcosystemConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestApplyEcosystemPreset(t *testing.T) {
	easy := DefaultEcosystemConfig()
	ApplyEcosystemPreset(&easy, DifficultyEasy)
	if easy.Events.Drought.Chance != 0.025 {
		t.Errorf("easy drought chance = %v, want 0.025", easy.Events.Drought.Chance)
	}

	hard := DefaultEcosystemConfig()
	ApplyEcosystemPreset(&hard, DifficultyHard)
	if hard.Events.Drought.Chance != 0.1 || hard.Events.Migration.Chance != 0.04 {
		t.Errorf("hard chances = %+v", hard.Events)
	}
	if hard.Events.Disease.Loss != 0.45 {
		t.Errorf("hard disease loss = %v, want 0.45", hard.Events.Disease.Loss)
	}
	if hard.Initial != DefaultEcosystemConfig().Initial {
		t.Error("presets must not change initial populations")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	normal := DefaultEcosystemConfig()
	ApplyEcosystemPreset(&normal, DifficultyNormal)
	if normal != DefaultEcosystemConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultEcosystemConfig()
	cfg.MaxTurns = 40

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}

func TestScaleChance(t *testing.T) {
	tests := []struct {
		v, factor, want float64
	}{
		{0.05, 3, 0.15},
		{0.1, 0.5, 0.05},
		{0.8, 2, 1},
		{0, 5, 0},
	}

	for _, tt := range tests {
		if got := ScaleChance(tt.v, tt.factor); got != tt.want {
			t.Errorf("ScaleChance(%v, %v) = %v, want %v", tt.v, tt.factor, got, tt.want)
		}
	}
}
