// Package registry provides a global registry of simulation scenarios.
// Scenarios register themselves in init() functions, allowing the CLI and
// the TUI to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/florafauna/internal/config"
)

// Scenario is a named variation of the simulation constants.
type Scenario struct {
	// ID is a unique identifier used by CLI commands and score storage (e.g., "meadow").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown in listings.
	Description string

	// Apply adjusts a loaded configuration. Nil leaves it unchanged.
	// Scenarios change rule constants only, never the starting populations.
	Apply func(cfg *config.EcosystemConfig)
}

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	scenarios = make(map[string]Scenario)
	mu        sync.RWMutex
)

// Register adds a scenario to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(s Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if s.ID == "" {
		panic("registry: scenario without ID")
	}
	if _, exists := scenarios[s.ID]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", s.ID))
	}

	scenarios[s.ID] = s
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(scenarios))
	for _, s := range scenarios {
		result = append(result, ScenarioInfo{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the scenario registered under id.
func Get(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := scenarios[id]
	if !ok {
		return Scenario{}, fmt.Errorf("registry: unknown scenario %q", id)
	}
	return s, nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := scenarios[id]
	return ok
}

// Configure applies the scenario to a copy of base and validates the result.
func Configure(id string, base config.EcosystemConfig) (config.EcosystemConfig, error) {
	s, err := Get(id)
	if err != nil {
		return base, err
	}

	cfg := base
	if s.Apply != nil {
		s.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("registry: scenario %q: %w", id, err)
	}
	return cfg, nil
}
