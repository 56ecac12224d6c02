package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

	for _, total := range []int{13, 8, 32} {
		if _, err := store.SaveRun(Run{ScenarioID: "basics", ScenarioName: "Basics", Total: total}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{ScenarioID: "wildcard-cross", Total: 13}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("basics", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Total != 32 || runs[1].Total != 13 || runs[2].Total != 8 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].ScenarioName != "Basics" {
		t.Errorf("Expected scenario name Basics, got %q", runs[0].ScenarioName)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}

	other, err := store.TopRuns("wildcard-cross", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 wildcard-cross run, got %d", len(other))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRun(Run{ScenarioID: "test", Total: (i + 1) * 10})
	}

	runs, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Total != 50 || runs[1].Total != 40 || runs[2].Total != 30 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		ScenarioID: "rollback",
		Total:      3,
		Mismatches: 1,
		Duration:   1500 * time.Millisecond,
		Plays: []PlayRecord{
			{Index: 1, Kind: "line", Score: 3, OK: true},
			{Index: 2, Kind: "line", Reason: "NO_MATCH", OK: false},
			{Index: 3, Kind: "probe", OK: true},
		},
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil")
	}
	if got.Passed() {
		t.Error("Run with a mismatch should not pass")
	}
	if got.Duration != run.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, run.Duration)
	}
	if len(got.Plays) != 3 {
		t.Fatalf("Expected 3 plays, got %d", len(got.Plays))
	}
	if got.Plays[1] != run.Plays[1] {
		t.Errorf("Plays[1] = %+v, want %+v", got.Plays[1], run.Plays[1])
	}

	missing, err := store.RunByID(id + 100)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("basics")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for unplayed scenario, got %d", high)
	}

	store.SaveRun(Run{ScenarioID: "basics", Total: 10})
	store.SaveRun(Run{ScenarioID: "basics", Total: 30})
	store.SaveRun(Run{ScenarioID: "basics", Total: 20})

	high, err = store.HighScore("basics")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	id, _ := store.SaveRun(Run{ScenarioID: "basics", Total: 10, Plays: []PlayRecord{{Index: 1, Kind: "line", Score: 10, OK: true}}})
	store.SaveRun(Run{ScenarioID: "basics", Total: 20})
	store.SaveRun(Run{ScenarioID: "rollback", Total: 3})

	if err := store.ClearRuns("basics"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	basics, _ := store.TopRuns("basics", 10)
	if len(basics) != 0 {
		t.Errorf("Expected 0 basics runs after clear, got %d", len(basics))
	}
	if run, _ := store.RunByID(id); run != nil {
		t.Error("Cleared run should be gone")
	}

	rollback, _ := store.TopRuns("rollback", 10)
	if len(rollback) != 1 {
		t.Errorf("rollback runs should not be affected by clearing basics")
	}
}

func TestStoreScenarioStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ScenarioStats("basics")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastRun.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{ScenarioID: "basics", Total: 10})
	store.SaveRun(Run{ScenarioID: "basics", Total: 30, Mismatches: 2})

	stats, err := store.ScenarioStats("basics")
	if err != nil {
		t.Fatalf("ScenarioStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.Passed != 1 {
		t.Errorf("Passed = %d, want 1", stats.Passed)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
	if stats.LastRun.IsZero() {
		t.Error("LastRun was not populated")
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
