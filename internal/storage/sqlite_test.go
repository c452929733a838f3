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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200, 200} {
		if _, err := store.SaveScore("mobhold", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("mobhold", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	expected := []int{200, 200, 100}
	if len(scores) != len(expected) {
		t.Fatalf("Expected %d scores, got %d", len(expected), len(scores))
	}
	for i, e := range expected {
		if scores[i].Score != e {
			t.Errorf("Score[%d] = %d, expected %d", i, scores[i].Score, e)
		}
		if scores[i].GameID != "mobhold" {
			t.Errorf("Score[%d] game = %s, expected mobhold", i, scores[i].GameID)
		}
	}
	if scores[0].ID > scores[1].ID {
		t.Error("Equal scores should keep insertion order")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("mobhold")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore on empty table = %d, expected 0", high)
	}

	store.SaveScore("mobhold", 40)
	store.SaveScore("mobhold", 1234)

	high, err = store.HighScore("mobhold")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1234 {
		t.Errorf("HighScore = %d, expected 1234", high)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("mobhold")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", empty)
	}

	store.SaveScore("mobhold", 100)
	store.SaveScore("mobhold", 300)

	stats, err := store.GetGameStats("mobhold")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v, expected 2 games, high 300, avg 200", stats)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("mobhold", 100)
	store.SaveRun(Run{GameID: "mobhold", Score: 100})
	store.SaveScore("other", 7)

	if err := store.ClearScores("mobhold"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("mobhold", 10)
	runs, _ := store.RecentRuns("mobhold", 10)
	if len(scores) != 0 || len(runs) != 0 {
		t.Errorf("after clear: %d scores and %d runs, expected none", len(scores), len(runs))
	}
	if other, _ := store.TopScores("other", 10); len(other) != 1 {
		t.Error("ClearScores should not touch other games")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:     "mobhold",
		Seed:       42,
		Difficulty: "hard",
		Score:      1500,
		Kills:      97,
		Duration:   3*time.Minute + 12*time.Second + 500*time.Millisecond,
		Upgrades:   6,
		Loadout:    []string{"Kunai L3", "Bomb L1", "IceScroll"},
		KilledBy:   "Beast",
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveRun() id = %q, expected a UUID", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Score != 1500 || got.Kills != 97 || got.Seed != 42 || got.Difficulty != "hard" {
		t.Errorf("RunByID() = %+v, fields do not match", got)
	}
	if got.Duration != run.Duration {
		t.Errorf("Duration = %v, expected %v", got.Duration, run.Duration)
	}
	if len(got.Loadout) != 3 || got.Loadout[2] != "IceScroll" {
		t.Errorf("Loadout = %v, expected %v", got.Loadout, run.Loadout)
	}
	if got.Headless {
		t.Error("Headless should default to false")
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = (%v, %v), expected (nil, nil)", missing, err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(Run{GameID: "mobhold", Score: i * 10, Headless: i%2 == 0}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("mobhold", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, expected 3", len(runs))
	}
	// Same-second inserts fall back to insertion order, newest first
	for i, expected := range []int{40, 30, 20} {
		if runs[i].Score != expected {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, expected)
		}
	}
	if !runs[0].Headless || runs[1].Headless {
		t.Error("Headless flag did not round-trip")
	}
}

func TestParseTime(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       any
		expected time.Time
	}{
		{"time", now, now},
		{"string", "2026-03-01 12:30:00", now},
		{"garbage", "yesterday", time.Time{}},
		{"nil", nil, time.Time{}},
	}
	for _, tt := range tests {
		if got := parseTime(tt.in); !got.Equal(tt.expected) {
			t.Errorf("%s: parseTime = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
