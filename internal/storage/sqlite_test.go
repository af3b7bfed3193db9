package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
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
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(Run{GameID: "flappy", Score: 9}); err != nil {
		t.Fatal(err)
	}
	if err := store.SetHighScore("flappy", 9); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.BestRun("flappy"); best != 9 {
		t.Errorf("BestRun() after reopen = %d, expected 9", best)
	}
	if high, _ := store.HighScore("flappy"); high != 9 {
		t.Errorf("HighScore() after reopen = %d, expected 9", high)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "flappy", Player: "ann", Score: 100, Ticks: 900, Cause: "pipe"},
		{GameID: "flappy", Player: "bob", Score: 50, Ticks: 500, Cause: "ground"},
		{GameID: "flappy", Player: "ann", Score: 200, Ticks: 1500, Cause: "pipe"},
		{GameID: "flappy", Player: "cat", Score: 100, Ticks: 880, Cause: "ground"},
		{GameID: "other", Player: "ann", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("flappy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 4 {
		t.Fatalf("Expected 4 runs, got %d", len(top))
	}

	wantPlayers := []string{"ann", "ann", "cat", "bob"}
	wantScores := []int{200, 100, 100, 50}
	for i := range top {
		if top[i].Score != wantScores[i] || top[i].Player != wantPlayers[i] {
			t.Errorf("run %d = %s/%d, expected %s/%d", i, top[i].Player, top[i].Score, wantPlayers[i], wantScores[i])
		}
	}
	if top[0].Ticks != 1500 || top[0].Cause != "pipe" {
		t.Errorf("run details lost: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	limited, err := store.TopRuns("flappy", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 || limited[0].Score != 200 {
		t.Errorf("limited runs = %+v", limited)
	}

	all, err := store.TopRuns("flappy", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Errorf("limit 0 should return every run, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(Run{GameID: "flappy", Score: i})
	}

	recent, err := store.RecentRuns("flappy", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 5 || recent[2].Score != 3 {
		t.Errorf("recent runs out of order: %+v", recent)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("flappy")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty history, got %d", best)
	}

	store.SaveRun(Run{GameID: "flappy", Score: 100})
	store.SaveRun(Run{GameID: "flappy", Score: 300})
	store.SaveRun(Run{GameID: "flappy", Score: 200})

	if best, _ = store.BestRun("flappy"); best != 300 {
		t.Errorf("Expected best run of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "flappy", Score: 100})
	store.SaveRun(Run{GameID: "other", Score: 300})
	store.SetHighScore("flappy", 100)

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("flappy", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("Other games should not be affected")
	}
	if high, _ := store.HighScore("flappy"); high != 100 {
		t.Errorf("Clearing history should keep the high score, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "flappy", Player: "ann", Score: 10, Ticks: 100})
	store.SaveRun(Run{GameID: "flappy", Player: "bob", Score: 20, Ticks: 300})
	store.SaveRun(Run{GameID: "flappy", Player: "ann", Score: 30, Ticks: 200})

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.BestScore != 30 || stats.TotalScore != 60 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalTicks != 600 || stats.Players != 2 {
		t.Errorf("TotalTicks = %d Players = %d", stats.TotalTicks, stats.Players)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores("flappy", nil)

	if got := hs.Load(); got != 0 {
		t.Errorf("never-written high score = %d, expected 0", got)
	}

	for _, n := range []int{5, 3, 1000} {
		if err := hs.Save(n); err != nil {
			t.Fatalf("Save(%d): %v", n, err)
		}
		if got := hs.Load(); got != n {
			t.Errorf("Load() after Save(%d) = %d", n, got)
		}
	}

	if err := hs.Save(-1); err == nil {
		t.Error("negative high score should be rejected")
	}
	if got := store.HighScores("other", nil).Load(); got != 0 {
		t.Errorf("high scores are per game, got %d", got)
	}
}

func TestStoreSharedHighScore(t *testing.T) {
	store := openTestStore(t)
	shared := highscore.NewMonotonic(store.HighScores("flappy", nil))

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := shared.Save(n); err != nil {
				t.Errorf("Save(%d): %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	if got := shared.Load(); got != 20 {
		t.Errorf("shared high score = %d, expected 20", got)
	}
}
