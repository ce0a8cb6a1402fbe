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

func mustSave(t *testing.T, store *Store, r Result) {
	t.Helper()
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, Result{Variant: "snake", Score: 7, Length: 11, Ticks: 300})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestScore("snake")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 7 {
		t.Errorf("Expected best score 7 after reopen, got %d", best)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Variant: "snake", Score: 3, Length: 7, Ticks: 120})
	mustSave(t, store, Result{Variant: "snake", Score: 1, Length: 5, Ticks: 40})
	mustSave(t, store, Result{Variant: "snake", Score: 9, Length: 13, Ticks: 800})
	mustSave(t, store, Result{Variant: "snake_feast", Score: 20, Length: 24, Ticks: 900})

	results, err := store.TopResults("snake", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	want := []int{9, 3, 1}
	for i, r := range results {
		if r.Score != want[i] {
			t.Errorf("result %d: score %d, expected %d", i, r.Score, want[i])
		}
		if r.Variant != "snake" {
			t.Errorf("result %d: variant %q leaked into snake results", i, r.Variant)
		}
	}

	top := results[0]
	if top.Length != 13 || top.Ticks != 800 {
		t.Errorf("Top result = %+v, expected length 13 and 800 ticks", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopResultsOrdering(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		limit   int
		want    []uint64 // ticks of the returned rows, in order
	}{
		{
			name: "ties broken by fewer ticks",
			results: []Result{
				{Variant: "snake", Score: 5, Length: 9, Ticks: 500},
				{Variant: "snake", Score: 5, Length: 9, Ticks: 200},
				{Variant: "snake", Score: 6, Length: 10, Ticks: 900},
			},
			limit: 10,
			want:  []uint64{900, 200, 500},
		},
		{
			name: "limit",
			results: []Result{
				{Variant: "snake", Score: 1, Ticks: 1},
				{Variant: "snake", Score: 2, Ticks: 2},
				{Variant: "snake", Score: 3, Ticks: 3},
				{Variant: "snake", Score: 4, Ticks: 4},
			},
			limit: 2,
			want:  []uint64{4, 3},
		},
		{
			name: "non-positive limit defaults to ten",
			results: []Result{
				{Variant: "snake", Score: 1, Ticks: 1},
			},
			limit: 0,
			want:  []uint64{1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			for _, r := range tc.results {
				mustSave(t, store, r)
			}

			got, err := store.TopResults("snake", tc.limit)
			if err != nil {
				t.Fatalf("TopResults() failed: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %d results, got %d", len(tc.want), len(got))
			}
			for i := range tc.want {
				if got[i].Ticks != tc.want[i] {
					t.Errorf("row %d: ticks %d, expected %d", i, got[i].Ticks, tc.want[i])
				}
			}
		})
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("snake")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty variant, got %d", best)
	}

	mustSave(t, store, Result{Variant: "snake", Score: 4})
	mustSave(t, store, Result{Variant: "snake", Score: 12})
	mustSave(t, store, Result{Variant: "snake", Score: 8})

	best, err = store.BestScore("snake")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("Expected best score of 12, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("snake")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Games != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	mustSave(t, store, Result{Variant: "snake", Score: 2, Length: 6})
	mustSave(t, store, Result{Variant: "snake", Score: 4, Length: 8})

	stats, err := store.Stats("snake")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.BestScore != 4 || stats.MaxLength != 8 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("Expected average 3, got %v", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Result{Variant: "snake", Score: 1})
	mustSave(t, store, Result{Variant: "snake", Score: 2})
	mustSave(t, store, Result{Variant: "snake_feast", Score: 3})

	if err := store.ClearResults("snake"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	cleared, _ := store.TopResults("snake", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 snake results after clear, got %d", len(cleared))
	}

	kept, _ := store.TopResults("snake_feast", 10)
	if len(kept) != 1 {
		t.Errorf("Feast results should not be affected by clearing snake")
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
