package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/florafauna/internal/config"
	"github.com/vovakirdan/florafauna/internal/games/florafauna"
	"github.com/vovakirdan/florafauna/internal/registry"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config [scenario]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a scenario runs with, after the config file,
the difficulty preset and the scenario have been applied. The output is a
valid ecosystem.yaml.

Examples:
  florafauna config
  florafauna config drylands --difficulty hard
  florafauna config --defaults > ~/.florafauna/configs/ecosystem.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	scenarioID := florafauna.DefaultScenario
	if len(args) == 1 {
		scenarioID = args[0]
	}

	cfg, err := registry.Configure(scenarioID, ecoConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}
