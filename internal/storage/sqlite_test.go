package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parent directories")
}

func TestStoreReopenKeepsResults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "ballsort", Moves: 12})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	results, err := store.BestResults("ballsort", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	version, err := store.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version, "reopening should not rerun migrations")
}

func TestSaveAndBestResults(t *testing.T) {
	store := openTestStore(t)

	save := func(gameID string, moves int, d time.Duration) {
		_, err := store.SaveResult(Result{GameID: gameID, Player: "ann", Moves: moves, Duration: d})
		require.NoError(t, err)
	}
	save("ballsort", 20, 40*time.Second)
	save("ballsort", 12, 90*time.Second)
	save("ballsort", 12, 30*time.Second)
	save("ballsort_classic", 5, time.Second)

	results, err := store.BestResults("ballsort", 10)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Fewest moves first, faster solve breaks the tie
	assert.Equal(t, 12, results[0].Moves)
	assert.Equal(t, 30*time.Second, results[0].Duration)
	assert.Equal(t, 12, results[1].Moves)
	assert.Equal(t, 20, results[2].Moves)

	assert.Equal(t, "ann", results[0].Player)
	assert.NotEmpty(t, results[0].SessionID, "session ID should be generated")
	assert.False(t, results[0].CreatedAt.IsZero())

	limited, err := store.BestResults("ballsort", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveResultRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{Moves: 3})
	assert.Error(t, err)
}

func TestSessionIDUnique(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{GameID: "ballsort", SessionID: "s-1", Moves: 3})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "ballsort", SessionID: "s-1", Moves: 4})
	assert.Error(t, err, "a session is recorded once")

	r, err := store.ResultBySession("s-1")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 3, r.Moves)

	missing, err := store.ResultBySession("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecentResults(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := store.SaveResult(Result{
			GameID:    "ballsort",
			Moves:     10 + i,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	recent, err := store.RecentResults(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 12, recent[0].Moves)
	assert.True(t, recent[0].CreatedAt.Equal(base.Add(2*time.Hour)))
}

func TestClearResults(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveResult(Result{GameID: "ballsort", Moves: 9})
	require.NoError(t, err)
	_, err = store.SaveResult(Result{GameID: "ballsort_classic", Moves: 9})
	require.NoError(t, err)

	require.NoError(t, store.ClearResults("ballsort"))

	results, err := store.BestResults("ballsort", 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	other, err := store.BestResults("ballsort_classic", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("ballsort")
	require.NoError(t, err)
	assert.Zero(t, empty.Wins)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, m := range []int{10, 20} {
		_, err := store.SaveResult(Result{GameID: "ballsort", Moves: m, Duration: time.Duration(m) * time.Second})
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("ballsort")
	require.NoError(t, err)
	assert.Equal(t, "ballsort", stats.GameID)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 10, stats.BestMoves)
	assert.InDelta(t, 15.0, stats.AvgMoves, 0.001)
	assert.Equal(t, 10*time.Second, stats.Fastest)
	assert.False(t, stats.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Contains(t, all, "ballsort")
	assert.Equal(t, 2, all["ballsort"].Wins)
}
