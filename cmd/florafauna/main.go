// florafauna is a turn-based ecosystem simulator for the terminal.
//
// Usage:
//
//	florafauna list                  - List available scenarios
//	florafauna play [scenario]       - Play a scenario (menu if omitted)
//	florafauna simulate [scenario]   - Run a scripted simulation without a UI
//	florafauna scores [scenario]     - Show the leaderboard
//	florafauna config [scenario]     - Print the effective configuration
//	florafauna serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Animation rate (default: 30)
//	--seed <value>        - RNG seed for reproducible runs
//	--db <path>           - Leaderboard database (default: ~/.florafauna/runs.db)
//	--config <path>       - Custom ecosystem.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/florafauna/internal/config"
	"github.com/vovakirdan/florafauna/internal/games/florafauna"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var (
	logger    *log.Logger
	ecoConfig config.EcosystemConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "florafauna",
	Short: "Flora & Fauna - keep a tiny ecosystem in balance",
	Long: `Flora & Fauna is a turn-based ecosystem simulator. Plants, herbivores
and predators grow, eat and reproduce every turn; each turn you may plant
seeds, release herbivores, release a predator or simply watch.

Available commands:
  list      - Show all scenarios
  play      - Play a scenario in the terminal
  simulate  - Run a scripted simulation and print every turn
  scores    - View the leaderboard
  config    - Print the effective configuration
  serve     - Start SSH server for remote play

Examples:
  florafauna play
  florafauna play drylands --difficulty hard
  florafauna simulate --script "plant*3, skip*27" --seed 7
  florafauna scores meadow
  florafauna serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Animation rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.florafauna/runs.db", "Path to leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom ecosystem.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the configuration shared by all commands.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "florafauna",
	})

	ecoConfig, err = loadConfig(flagConfig, flagDifficulty)
	return err
}

// loadConfig loads ecosystem.yaml and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.EcosystemConfig, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.EcosystemConfig{}, err
	}

	cfg, err := config.LoadEcosystem(path)
	if err != nil {
		return config.EcosystemConfig{}, err
	}
	config.ApplyEcosystemPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newGame creates a game for the scenario on top of the loaded configuration.
func newGame(scenarioID string) (*florafauna.Game, error) {
	return florafauna.New(scenarioID, ecoConfig)
}
