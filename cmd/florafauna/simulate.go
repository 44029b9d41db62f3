package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/florafauna/internal/config"
	"github.com/vovakirdan/florafauna/internal/ecosystem"
	"github.com/vovakirdan/florafauna/internal/games/florafauna"
	"github.com/vovakirdan/florafauna/internal/registry"
	"github.com/vovakirdan/florafauna/internal/script"
	"github.com/vovakirdan/florafauna/internal/storage"
)

var (
	flagScript     string
	flagScriptFile string
	flagFormat     string
	flagSave       bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario]",
	Short: "Run a scripted simulation without a UI",
	Long: `Play a scenario from an action script and print every turn.

A script lists actions separated by spaces, commas or semicolons. An action
may be repeated with *N and # starts a comment:

  plant*3, skip   # grow the meadow first
  herbivore; predator*2

Actions: plant (seeds), herbivore (herb), predator (pred), skip (wait).
Without a script every turn is skipped. The run stops when the script runs
out or the simulation ends.

Examples:
  florafauna simulate
  florafauna simulate drylands --script "plant*5 skip*25" --seed 7
  florafauna simulate --script-file strategy.ff --format yaml
  florafauna simulate wolfpack --script "pred*2" --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Action script")
	simulateCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "Read the action script from a file")
	simulateCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, yaml")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record a finished run on the leaderboard")
	simulateCmd.MarkFlagsMutuallyExclusive("script", "script-file")
}

// turnRecord is one played turn in the report.
type turnRecord struct {
	Turn       int      `yaml:"turn"`
	Action     string   `yaml:"action"`
	Plants     int      `yaml:"plants"`
	Herbivores int      `yaml:"herbivores"`
	Predators  int      `yaml:"predators"`
	Balance    int      `yaml:"balance"`
	Event      string   `yaml:"event,omitempty"`
	Messages   []string `yaml:"messages"`
}

type summaryRecord struct {
	Collapsed     bool `yaml:"collapsed"`
	TurnsSurvived int  `yaml:"turns_survived"`
	Score         int  `yaml:"score"`
	Plants        int  `yaml:"plants"`
	Herbivores    int  `yaml:"herbivores"`
	Predators     int  `yaml:"predators"`
}

// runReport is the headless runner's output.
type runReport struct {
	Scenario   string         `yaml:"scenario"`
	Difficulty string         `yaml:"difficulty"`
	Seed       int64          `yaml:"seed"`
	Turns      []turnRecord   `yaml:"turns"`
	Summary    *summaryRecord `yaml:"summary,omitempty"`

	final *ecosystem.Summary
}

func runSimulate(_ *cobra.Command, args []string) {
	scenarioID := florafauna.DefaultScenario
	if len(args) == 1 {
		scenarioID = args[0]
	}

	if flagFormat != "text" && flagFormat != "yaml" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want text or yaml)\n", flagFormat)
		os.Exit(1)
	}

	actions, err := loadScript(flagScript, flagScriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report, err := simulate(ecoConfig, scenarioID, seed, actions, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, _ := config.ParsePreset(flagDifficulty)
	report.Difficulty = string(preset)

	if flagFormat == "yaml" {
		err = writeYAML(os.Stdout, report)
	} else {
		err = writeText(os.Stdout, report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSave {
		saveReport(report)
	}
}

func loadScript(source, path string) ([]ecosystem.Action, error) {
	if path != "" {
		return script.ParseFile(path)
	}
	return script.Parse(source)
}

// simulate plays actions against a fresh simulator. An empty action list
// skips every turn.
func simulate(cfg config.EcosystemConfig, scenarioID string, seed int64, actions []ecosystem.Action, logger *log.Logger) (runReport, error) {
	cfg, err := registry.Configure(scenarioID, cfg)
	if err != nil {
		return runReport{}, err
	}
	rules := cfg.Rules()

	if len(actions) == 0 {
		actions = make([]ecosystem.Action, rules.MaxTurns)
		for i := range actions {
			actions[i] = ecosystem.ActionSkip
		}
	}

	sim := ecosystem.New(rules, rand.New(rand.NewSource(seed)))
	report := runReport{Scenario: scenarioID, Seed: seed}

	for _, action := range actions {
		turn := sim.State().Turn
		res, err := sim.ApplyTurn(action)
		if err != nil {
			return report, err
		}
		if !res.Applied {
			break
		}

		rec := turnRecord{
			Turn:       turn,
			Action:     action.String(),
			Plants:     res.State.Plants,
			Herbivores: res.State.Herbivores,
			Predators:  res.State.Predators,
			Balance:    ecosystem.Balance(res.State),
			Messages:   res.Messages,
		}
		if res.Event != ecosystem.EventNone {
			rec.Event = res.Event.String()
		}
		report.Turns = append(report.Turns, rec)

		logger.Debug("turn played", "turn", turn, "action", rec.Action, "event", res.Event,
			"plants", rec.Plants, "herbivores", rec.Herbivores, "predators", rec.Predators)

		if res.Terminal {
			break
		}
	}

	if sum := sim.Summary(); sum != nil {
		report.final = sum
		report.Summary = &summaryRecord{
			Collapsed:     sum.Collapsed,
			TurnsSurvived: sum.TurnsSurvived(),
			Score:         sum.Score(),
			Plants:        sum.Final.Plants,
			Herbivores:    sum.Final.Herbivores,
			Predators:     sum.Final.Predators,
		}
		logger.Info("run finished", "scenario", scenarioID, "score", sum.Score(), "collapsed", sum.Collapsed)
	} else {
		logger.Info("script exhausted before the run ended", "scenario", scenarioID, "turns", len(report.Turns))
	}

	return report, nil
}

func writeYAML(w io.Writer, r runReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("cannot encode report: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, r runReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario %s  seed %d\n\n", r.Scenario, r.Seed)

	for _, t := range r.Turns {
		fmt.Fprintf(&b, "Turn %2d  %-9s  plants %4d  herbivores %3d  predators %3d  balance %3d%%\n",
			t.Turn, t.Action, t.Plants, t.Herbivores, t.Predators, t.Balance)
		for _, msg := range t.Messages {
			fmt.Fprintf(&b, "  %s\n", msg)
		}
	}

	if r.Summary != nil {
		fmt.Fprintf(&b, "\nScore: %d\n", r.Summary.Score)
	} else {
		fmt.Fprintf(&b, "\nScript ended after %d turns; the simulation is still running.\n", len(r.Turns))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func saveReport(r runReport) {
	if r.final == nil {
		logger.Warn("run not finished, nothing saved")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.NewRun(r.Scenario, r.Seed, *r.final))
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Info("run saved", "id", id)
}
