package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-snake/internal/games/snake"
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

func result(score int, elapsed uint32, endless bool) snake.Result {
	return snake.Result{
		Score:   score,
		Length:  score + snake.StartLen,
		Elapsed: elapsed,
		Endless: endless,
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

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	store.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	for _, r := range []snake.Result{
		result(10, 60, false),
		result(5, 30, false),
		result(20, 200, true),
	} {
		if err := store.RecordResult(r); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	entries, err := store.TopResults(AllModes, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("TopResults() returned %d entries, expected 3", len(entries))
	}

	first := entries[0]
	if first.Score != 20 || first.Length != 27 || first.ElapsedSecs != 200 || !first.Endless {
		t.Errorf("TopResults()[0] = %+v, expected score 20 length 27 elapsed 200 endless", first)
	}
	if !first.CreatedAt.Equal(time.Unix(1_700_000_000, 0)) {
		t.Errorf("CreatedAt = %v, expected 1700000000", first.CreatedAt)
	}
	if entries[1].Score != 10 || entries[2].Score != 5 {
		t.Errorf("order = %d, %d, expected 10, 5", entries[1].Score, entries[2].Score)
	}
}

func TestStoreTopResultsFilterAndTies(t *testing.T) {
	store := openTestStore(t)

	store.RecordResult(result(7, 90, false)) //nolint:errcheck
	store.RecordResult(result(7, 45, false)) //nolint:errcheck
	store.RecordResult(result(9, 10, true))  //nolint:errcheck

	classic, err := store.TopResults(ClassicOnly, 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Fatalf("TopResults(ClassicOnly) returned %d entries, expected 2", len(classic))
	}
	if classic[0].ElapsedSecs != 45 {
		t.Errorf("tie broken by %d seconds, expected the faster 45", classic[0].ElapsedSecs)
	}

	endless, _ := store.TopResults(EndlessOnly, 10)
	if len(endless) != 1 || endless[0].Score != 9 {
		t.Errorf("TopResults(EndlessOnly) = %+v, expected one score 9", endless)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordResult(result((i+1)*10, 1, false)) //nolint:errcheck
	}

	entries, err := store.TopResults(AllModes, 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(entries))
	}
	if entries[0].Score != 50 || entries[1].Score != 40 || entries[2].Score != 30 {
		t.Errorf("Entries not in expected order: %v", entries)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore(AllModes)
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty history = %d, expected 0", best)
	}

	store.RecordResult(result(12, 1, false)) //nolint:errcheck
	store.RecordResult(result(30, 1, true))  //nolint:errcheck

	if best, _ := store.BestScore(AllModes); best != 30 {
		t.Errorf("BestScore(AllModes) = %d, expected 30", best)
	}
	if best, _ := store.BestScore(ClassicOnly); best != 12 {
		t.Errorf("BestScore(ClassicOnly) = %d, expected 12", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	store.now = func() time.Time { return time.Unix(1_700_000_500, 0) }

	won := result(snake.WinLen-snake.StartLen, 3600, false)
	won.Won = true
	store.RecordResult(won)                   //nolint:errcheck
	store.RecordResult(result(1, 60, false)) //nolint:errcheck

	stats, err := store.Stats(AllModes)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Wins != 1 {
		t.Errorf("GamesCount/Wins = %d/%d, expected 2/1", stats.GamesCount, stats.Wins)
	}
	if stats.BestScore != snake.WinLen-snake.StartLen {
		t.Errorf("BestScore = %d, expected %d", stats.BestScore, snake.WinLen-snake.StartLen)
	}
	if stats.TotalSeconds != 3660 {
		t.Errorf("TotalSeconds = %d, expected 3660", stats.TotalSeconds)
	}
	if !stats.LastPlayed.Equal(time.Unix(1_700_000_500, 0)) {
		t.Errorf("LastPlayed = %v, expected 1700000500", stats.LastPlayed)
	}

	empty, err := store.Stats(EndlessOnly)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats(EndlessOnly) = %+v, expected empty", empty)
	}
}

func TestStoreRecentAndClear(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.RecordResult(result(i, 1, i%2 == 1)) //nolint:errcheck
	}

	recent, err := store.Recent(AllModes, 5)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(recent) != 5 || recent[0].Score != 19 {
		t.Fatalf("Recent(5) = %+v, expected 5 entries starting at 19", recent)
	}

	classic, err := store.Recent(ClassicOnly, 3)
	if err != nil {
		t.Fatalf("Recent(ClassicOnly) failed: %v", err)
	}
	for i, want := range []int{18, 16, 14} {
		if i >= len(classic) || classic[i].Score != want || classic[i].Endless {
			t.Fatalf("Recent(ClassicOnly) = %+v, expected scores 18, 16, 14", classic)
		}
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if all, _ := store.Recent(AllModes, 100); len(all) != 0 {
		t.Errorf("Expected 0 entries after Clear(), got %d", len(all))
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
