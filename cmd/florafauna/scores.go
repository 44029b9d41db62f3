package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/florafauna/internal/platform/tui"
	"github.com/vovakirdan/florafauna/internal/registry"
	"github.com/vovakirdan/florafauna/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [scenario]",
	Short: "Show the leaderboard",
	Long: `Display the best finished runs of a scenario, or a summary of every
scenario when none is given.

Examples:
  florafauna scores
  florafauna scores meadow
  florafauna scores meadow --limit 25
  florafauna scores --interactive
  florafauna scores drylands --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the leaderboard browser")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the scenario")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	scenarioID := ""
	if len(args) == 1 {
		scenarioID = args[0]
		if !registry.Exists(scenarioID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenarioID)
			fmt.Fprintln(os.Stderr, "Run 'florafauna list' to see available scenarios.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = clearScores(store, scenarioID)
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err = tui.RunScoreboard(store, width, height, scenarioID)
	case scenarioID == "":
		err = printSummary(store)
	default:
		err = printRuns(store, scenarioID)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, scenarioID string) error {
	if scenarioID == "" {
		return fmt.Errorf("--clear needs a scenario")
	}
	if err := store.ClearRuns(scenarioID); err != nil {
		return err
	}
	fmt.Printf("Cleared all runs of %s.\n", scenarioID)
	return nil
}

func printRuns(store *storage.Store, scenarioID string) error {
	sc, err := registry.Get(scenarioID)
	if err != nil {
		return err
	}

	runs, err := store.TopRuns(scenarioID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Leaderboard - %s\n", sc.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'florafauna play %s' to set the first score!\n", scenarioID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-14s  %-9s  %s\n", "Rank", "Score", "Turns", "P/H/X", "Outcome", "When")
	fmt.Printf("  %-4s  %-6s  %-5s  %-14s  %-9s  %s\n", "----", "-----", "-----", "-----", "-------", "----")

	for i, r := range runs {
		outcome := "survived"
		if r.Collapsed {
			outcome = "collapsed"
		}
		final := fmt.Sprintf("%d/%d/%d", r.Plants, r.Herbivores, r.Predators)
		fmt.Printf("  %-4d  %-6d  %-5d  %-14s  %-9s  %s\n",
			i+1, r.Score, r.Turns, final, outcome, humanize.Time(r.CreatedAt))
	}

	stats, err := store.ScenarioStats(scenarioID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Runs: %s  Collapses: %d  Average: %.1f\n",
			humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.Runs)),
			stats.Collapses, stats.AvgScore)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.AllScenarioStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-6s  %-9s  %s\n", "Scenario", "Runs", "Best", "Collapses", "Last played")
	fmt.Printf("  %-12s  %-5s  %-6s  %-9s  %s\n", "--------", "----", "----", "---------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-12s  %-5d  %-6d  %-9d  %s\n",
			id, st.Runs, st.HighScore, st.Collapses, humanize.Time(st.LastPlayed))
	}
	return nil
}
