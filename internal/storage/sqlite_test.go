package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/florafauna/internal/ecosystem"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveRun(t *testing.T, store *Store, scenario string, score int) int64 {
	t.Helper()
	id, err := store.SaveRun(Run{ScenarioID: scenario, Score: score, Turns: score / 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	sum := ecosystem.Summary{
		Final:     ecosystem.State{Turn: 31, Plants: 858},
		Collapsed: false,
		Message:   ecosystem.ClosingMessage,
	}
	id, err := store.SaveRun(NewRun("meadow", 42, sum))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("meadow", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.ScenarioID != "meadow" || r.Seed != 42 {
		t.Errorf("run identity = %d/%q/%d", r.ID, r.ScenarioID, r.Seed)
	}
	if r.Score != 350 || r.Turns != 30 || r.Plants != 858 || r.Herbivores != 0 || r.Collapsed {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
	if time.Since(r.CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt = %v, expected a recent time", r.CreatedAt)
	}
}

func TestStoreCollapsedRun(t *testing.T) {
	store := openTestStore(t)

	sum := ecosystem.Summary{Final: ecosystem.State{Turn: 5}, Collapsed: true}
	if _, err := store.SaveRun(NewRun("drylands", 1, sum)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.AllRuns("drylands")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 || !runs[0].Collapsed || runs[0].Score != 40 {
		t.Errorf("runs = %+v", runs)
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "meadow", 100)
	first := saveRun(t, store, "meadow", 200)
	saveRun(t, store, "meadow", 50)
	second := saveRun(t, store, "meadow", 200)
	saveRun(t, store, "sanctuary", 500)

	runs, err := store.TopRuns("meadow", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("ties should keep insertion order: got %d, %d", runs[0].ID, runs[1].ID)
	}
	if runs[2].Score != 100 {
		t.Errorf("Expected third score to be 100, got %d", runs[2].Score)
	}

	// Default limit
	runs, err = store.TopRuns("meadow", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Errorf("Expected 4 runs with default limit, got %d", len(runs))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("meadow")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty scenario, got %d", high)
	}

	saveRun(t, store, "meadow", 120)
	saveRun(t, store, "meadow", 310)

	high, err = store.HighScore("meadow")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 310 {
		t.Errorf("Expected high score 310, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveRun(t, store, "meadow", 100)
	saveRun(t, store, "wolfpack", 100)

	if err := store.ClearRuns("meadow"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.AllRuns("meadow")
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	runs, _ = store.AllRuns("wolfpack")
	if len(runs) != 1 {
		t.Error("Clearing one scenario should not affect others")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveRun(t, store, "test", i*10)
	}

	runs, err := store.AllRuns("test")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreScenarioStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ScenarioStats("meadow")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{ScenarioID: "meadow", Score: 100, Turns: 10})
	store.SaveRun(Run{ScenarioID: "meadow", Score: 300, Turns: 30})
	store.SaveRun(Run{ScenarioID: "meadow", Score: 20, Turns: 2, Collapsed: true})
	store.SaveRun(Run{ScenarioID: "drylands", Score: 60, Turns: 6})

	stats, err := store.ScenarioStats("meadow")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Collapses != 1 || stats.HighScore != 300 || stats.BestTurns != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 140 {
		t.Errorf("AvgScore = %v, want 140", stats.AvgScore)
	}

	all, err := store.AllScenarioStats()
	if err != nil {
		t.Fatalf("AllScenarioStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 scenarios, got %d", len(all))
	}
	if all["drylands"].Runs != 1 || all["drylands"].HighScore != 60 {
		t.Errorf("drylands stats = %+v", all["drylands"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
