package storage

import (
	"bytes"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("big", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	// Descending order.
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores out of order: %v %v %v", scores[0].Score, scores[1].Score, scores[2].Score)
	}

	bigScores, err := store.TopScores("big", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(bigScores) != 1 {
		t.Errorf("expected 1 big score, got %d", len(bigScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveScore("classic", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("expected 3 scores with limit 3, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("classic"); err != nil || high != 0 {
		t.Errorf("HighScore with no rows = (%d, %v), want (0, nil)", high, err)
	}

	store.SaveScore("classic", 70)
	store.SaveScore("classic", 120)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, want 120", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("classic", 10)
	store.SaveScore("big", 20)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("classic", 10)
	if len(scores) != 0 {
		t.Errorf("classic should have no scores, got %d", len(scores))
	}
	bigScores, _ := store.TopScores("big", 10)
	if len(bigScores) != 1 {
		t.Errorf("big should keep its score")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("classic", 10)
	store.SaveScore("classic", 30)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, want 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}
}

func TestStoreSaveLoadDeleteGame(t *testing.T) {
	store := openTestStore(t)

	if save, err := store.LoadGame("classic"); err != nil || save != nil {
		t.Fatalf("LoadGame with no save = (%v, %v), want (nil, nil)", save, err)
	}

	payload := []byte(`{"board":"stub"}`)
	if err := store.SaveGame("classic", payload, 42); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	save, err := store.LoadGame("classic")
	if err != nil {
		t.Fatalf("LoadGame() failed: %v", err)
	}
	if save == nil {
		t.Fatal("LoadGame returned nil after SaveGame")
	}
	if !bytes.Equal(save.Payload, payload) {
		t.Errorf("payload = %q, want %q", save.Payload, payload)
	}
	if save.Score != 42 {
		t.Errorf("score = %d, want 42", save.Score)
	}

	// Upsert replaces the slot.
	if err := store.SaveGame("classic", []byte("v2"), 99); err != nil {
		t.Fatalf("SaveGame() upsert failed: %v", err)
	}
	save, _ = store.LoadGame("classic")
	if string(save.Payload) != "v2" || save.Score != 99 {
		t.Errorf("upsert did not replace the slot: %+v", save)
	}

	if err := store.DeleteSave("classic"); err != nil {
		t.Fatalf("DeleteSave() failed: %v", err)
	}
	if save, _ := store.LoadGame("classic"); save != nil {
		t.Error("save should be gone after DeleteSave")
	}

	// Deleting again is fine.
	if err := store.DeleteSave("classic"); err != nil {
		t.Errorf("DeleteSave on missing slot should not error: %v", err)
	}
}
