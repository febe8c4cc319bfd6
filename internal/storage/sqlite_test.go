package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/taekwondino/internal/sim"
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

func run(score int, outcome sim.Outcome) RunRecord {
	return RunRecord{
		Player:  "Dino",
		Outcome: string(outcome),
		Score:   score,
		Kills:   score / 100,
		Level:   2,
		Frames:  600,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.taekwondino/runs.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".taekwondino", "runs.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under home")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		run(1200, sim.OutcomeGameOver),
		run(500, sim.OutcomeGameOver),
		run(3300, sim.OutcomeEnding),
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns() returned %d runs, expected 3", len(runs))
	}

	want := []int{3300, 1200, 500}
	for i, r := range runs {
		if r.Score != want[i] {
			t.Errorf("runs[%d].Score = %d, expected %d", i, r.Score, want[i])
		}
	}

	top := runs[0]
	if top.Outcome != "ending" || top.Player != "Dino" || top.Kills != 33 || top.Level != 2 || top.Frames != 600 {
		t.Errorf("runs[0] = %+v, fields not round-tripped", top)
	}
	if top.ID == 0 {
		t.Error("runs[0].ID not set")
	}
}

func TestStoreRejectsUnfinishedRun(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(run(100, sim.OutcomeNone)); err == nil {
		t.Error("SaveRun() of an unfinished run should fail")
	}
	if n, _ := store.CountRuns(); n != 0 {
		t.Errorf("CountRuns() = %d, expected 0", n)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(run((i+1)*100, sim.OutcomeGameOver))
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns(3) returned %d runs", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	runs, _ = store.TopRuns(0)
	if len(runs) != 5 {
		t.Errorf("TopRuns(0) returned %d runs, expected the default limit to cover 5", len(runs))
	}
}

func TestStoreTopRunsTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveRun(run(700, sim.OutcomeGameOver))
	store.SaveRun(run(700, sim.OutcomeGameOver))

	runs, _ := store.TopRuns(1)
	if len(runs) != 1 || runs[0].ID != first {
		t.Errorf("TopRuns(1) = %v, expected the earlier run %d", runs, first)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 with no runs", high)
	}

	store.SaveRun(run(100, sim.OutcomeGameOver))
	store.SaveRun(run(300, sim.OutcomeEnding))
	store.SaveRun(run(200, sim.OutcomeGameOver))

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreCountAndClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(run(100, sim.OutcomeGameOver))
	store.SaveRun(run(200, sim.OutcomeGameOver))

	if n, err := store.CountRuns(); err != nil || n != 2 {
		t.Errorf("CountRuns() = %d, %v, expected 2", n, err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.CountRuns(); n != 0 {
		t.Errorf("CountRuns() after clear = %d, expected 0", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetStats() on empty store = %+v", empty)
	}

	store.SaveRun(run(1000, sim.OutcomeGameOver))
	store.SaveRun(run(3000, sim.OutcomeEnding))

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, expected 1", stats.Completed)
	}
	if stats.HighScore != 3000 {
		t.Errorf("HighScore = %d, expected 3000", stats.HighScore)
	}
	if stats.AvgScore != 2000 {
		t.Errorf("AvgScore = %v, expected 2000", stats.AvgScore)
	}
	if stats.TotalKills != 40 {
		t.Errorf("TotalKills = %d, expected 40", stats.TotalKills)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestRecordFromSummary(t *testing.T) {
	got := RecordFromSummary(sim.RunSummary{
		Player:  "Dino",
		Outcome: sim.OutcomeEnding,
		Score:   4200,
		Kills:   12,
		Level:   3,
		Frames:  9000,
	})
	want := RunRecord{Player: "Dino", Outcome: "ending", Score: 4200, Kills: 12, Level: 3, Frames: 9000}
	if got != want {
		t.Errorf("RecordFromSummary() = %+v, expected %+v", got, want)
	}
}
