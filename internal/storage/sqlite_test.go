package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{3, 1, 5} {
		if _, err := store.SaveScore("kickball", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("kickball_endless", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("kickball", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in descending order: %v", scores)
	}

	endless, err := store.TopScores("kickball_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("kickball", i+1)
	}

	scores, err := store.TopScores("kickball", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("kickball")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("kickball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("kickball", 2)
	store.SaveScore("kickball", 5)
	store.SaveScore("kickball", 4)

	high, err = store.HighScore("kickball")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 5 {
		t.Errorf("Expected high score of 5, got %d", high)
	}
}

func TestStoreMatches(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{GameID: "kickball", GoalsFor: 5, GoalsAgainst: 2, Policy: "spring", DurationTicks: 3600},
		{GameID: "kickball", GoalsFor: 1, GoalsAgainst: 5, Policy: "clamp", DurationTicks: 2400},
		{GameID: "kickball_endless", GoalsFor: 9, GoalsAgainst: 4, Policy: "spring", DurationTicks: 9000},
	}
	for _, r := range records {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	got, err := store.RecentMatches("kickball", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 kickball matches, got %d", len(got))
	}
	// Newest first
	if got[0].Policy != "clamp" || got[0].GoalsAgainst != 5 || got[0].DurationTicks != 2400 {
		t.Errorf("newest match = %+v", got[0])
	}
	if !got[1].Won() || got[0].Won() {
		t.Errorf("Won() mismatch: %v %v", got[1].Won(), got[0].Won())
	}

	all, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 3 || all[0].GameID != "kickball_endless" {
		t.Errorf("all matches = %+v", all)
	}

	limited, _ := store.RecentMatches("", 1)
	if len(limited) != 1 {
		t.Errorf("Expected 1 match with limit, got %d", len(limited))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("kickball", 3)
	store.SaveScore("kickball_endless", 7)
	store.SaveMatch(MatchRecord{GameID: "kickball", GoalsFor: 3, GoalsAgainst: 5})

	if err := store.ClearScores("kickball"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("kickball", 10); len(scores) != 0 {
		t.Errorf("Expected 0 kickball scores after clear, got %d", len(scores))
	}
	if matches, _ := store.RecentMatches("kickball", 10); len(matches) != 0 {
		t.Errorf("Expected 0 kickball matches after clear, got %d", len(matches))
	}
	if scores, _ := store.TopScores("kickball_endless", 10); len(scores) != 1 {
		t.Error("Endless scores should not be affected by clearing kickball")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("kickball", 5)
	store.SaveScore("kickball", 1)
	store.SaveMatch(MatchRecord{GameID: "kickball", GoalsFor: 5, GoalsAgainst: 3})
	store.SaveMatch(MatchRecord{GameID: "kickball", GoalsFor: 1, GoalsAgainst: 5})
	store.SaveMatch(MatchRecord{GameID: "kickball", GoalsFor: 5, GoalsAgainst: 4})

	stats, err := store.GetGameStats("kickball")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 5 || stats.TotalScore != 6 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, want 3", stats.AvgScore)
	}
	if stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("Wins/Losses = %d/%d, want 2/1", stats.Wins, stats.Losses)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["kickball"] == nil {
		t.Errorf("all stats = %v", all)
	}
}
