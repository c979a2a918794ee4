package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	runs := []RunEntry{
		{Score: 100, Keys: 1},
		{Score: 50},
		{Score: 200, Backdoors: 2, BossTakedowns: 1, BestBossLevel: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].BossTakedowns != 1 || top[0].BestBossLevel != 1 {
		t.Errorf("Run details lost: %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Score: (i + 1) * 100})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty database, got %d", score)
	}

	store.SaveRun(RunEntry{Score: 300})
	store.SaveRun(RunEntry{Score: 700})
	store.SaveRun(RunEntry{Score: 500})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 700 {
		t.Errorf("Expected high score 700, got %d", score)
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	// Empty database yields zero counters, not an error.
	c, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if c.Runs != 0 || c.BestScore != 0 {
		t.Errorf("Expected zero counters for empty database, got %+v", c)
	}

	store.SaveRun(RunEntry{Score: 1000, Keys: 2, Backdoors: 1, BossTakedowns: 1, BestBossLevel: 1})
	store.SaveRun(RunEntry{Score: 2000, Keys: 3, BossTakedowns: 2, BestBossLevel: 3, Won: true})

	c, err = store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if c.Runs != 2 || c.BestScore != 2000 {
		t.Errorf("Run totals wrong: %+v", c)
	}
	if c.Keys != 5 || c.Backdoors != 1 {
		t.Errorf("Pickup totals wrong: %+v", c)
	}
	if c.BossTakedowns != 3 || c.BestBossLevel != 3 {
		t.Errorf("Boss totals wrong: %+v", c)
	}
	if c.Wins != 1 {
		t.Errorf("Win total wrong: %+v", c)
	}
}

func TestStoreRunsOn(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100})
	store.SaveRun(RunEntry{Score: 200})

	today, err := store.RunsOn(time.Now())
	if err != nil {
		t.Fatalf("RunsOn() failed: %v", err)
	}
	if today != 2 {
		t.Errorf("Expected 2 runs today, got %d", today)
	}

	yesterday, err := store.RunsOn(time.Now().AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("RunsOn() failed: %v", err)
	}
	if yesterday != 0 {
		t.Errorf("Expected 0 runs yesterday, got %d", yesterday)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}

func TestStoreAchievementUnlock(t *testing.T) {
	store := openTestStore(t)

	first, err := store.Unlock("first-run")
	if err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
	if !first {
		t.Error("First unlock should report true")
	}

	// Unlocking twice is a no-op.
	again, err := store.Unlock("first-run")
	if err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
	if again {
		t.Error("Repeated unlock should report false")
	}

	store.Unlock("first-key")

	unlocked, err := store.Unlocked()
	if err != nil {
		t.Fatalf("Unlocked() failed: %v", err)
	}
	if len(unlocked) != 2 {
		t.Errorf("Expected 2 unlocked achievements, got %d", len(unlocked))
	}
	if _, ok := unlocked["first-run"]; !ok {
		t.Error("first-run missing from unlocked set")
	}
}
