package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/florafauna/internal/core"
	"github.com/vovakirdan/florafauna/internal/platform/tui"
	"github.com/vovakirdan/florafauna/internal/registry"
	"github.com/vovakirdan/florafauna/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [scenario]",
	Short: "Play a scenario",
	Long: `Start the simulation in the terminal. Without a scenario a picker
menu is shown; after a run you can go back to it with Esc.

Controls:
  1/P        - Plant seeds
  2/H        - Add herbivores
  3/X        - Add a predator
  4/S/Space  - Do nothing this turn
  R          - Restart (after the run ends)
  Esc/B      - Back to the menu
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Half as many random events
  normal - The standard rules
  hard   - Twice as many random events, harsher losses

Examples:
  florafauna play
  florafauna play sanctuary
  florafauna play drylands --difficulty hard
  florafauna play --config ./my-ecosystem.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	scenarioID := ""
	if len(args) == 1 {
		scenarioID = args[0]
		if !registry.Exists(scenarioID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
			fmt.Fprintln(os.Stderr, "Run 'florafauna list' to see available scenarios.")
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the simulation still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := playLoop(store, cfg, scenarioID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// playLoop alternates between the menu, the leaderboard and games until the
// user quits. A non-empty scenarioID skips the first menu.
func playLoop(store *storage.Store, cfg core.RuntimeConfig, scenarioID string) error {
	var saver tui.RunSaver
	var lister tui.RunLister
	if store != nil {
		saver, lister = store, store
	}

	for {
		if scenarioID == "" {
			res, err := tui.RunMenu(cfg)
			if err != nil {
				return err
			}
			cfg = res.Config

			switch {
			case res.Quit:
				return nil
			case res.WantsScoreboard:
				goBack, err := tui.RunScoreboard(lister, cfg.ScreenW, cfg.ScreenH, "")
				if err != nil || !goBack {
					return err
				}
				continue
			}
			scenarioID = res.ScenarioID
		}

		game, err := newGame(scenarioID)
		if err != nil {
			return err
		}

		backToMenu, err := tui.Run(game, saver, cfg)
		if err != nil || !backToMenu {
			return err
		}

		scenarioID = ""
		cfg.Seed = 0 // later runs are random unless restarted with --seed
	}
}
