package storage

import (
	"path/filepath"
	"testing"

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

func mustSave(t *testing.T, store *Store, e ScoreEntry) {
	t.Helper()
	_, err := store.SaveScore(e)
	require.NoError(t, err)
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 50, Player: "alice"})
	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 200, Level: 3})
	mustSave(t, store, ScoreEntry{GameID: "breakout_endless", Score: 500, Level: 4})

	scores, err := store.TopScores("breakout", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Sorted descending
	assert.Equal(t, []int{200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, DefaultPlayer, scores[1].Player, "empty player defaults")
	assert.Equal(t, 1, scores[1].Level, "missing level defaults")
	assert.Equal(t, "alice", scores[2].Player)

	endless, err := store.TopScores("breakout_endless", 10)
	require.NoError(t, err)
	assert.Len(t, endless, 1)
}

func TestStoreSaveScoreRequiresGameID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{Score: 10})
	assert.Error(t, err)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, ScoreEntry{GameID: "breakout", Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("breakout", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Equal(t, []int{500, 400, 300}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
}

func TestStoreTopScoresTiesKeepEarlierGame(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 100, Player: "first"})
	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 100, Player: "second"})

	scores, err := store.TopScores("breakout", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "first", scores[0].Player)
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	require.NoError(t, err)
	assert.Zero(t, high, "no scores yet")

	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 300})
	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 200})

	high, err = store.HighScore("breakout")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 100})
	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 200})
	mustSave(t, store, ScoreEntry{GameID: "breakout_endless", Score: 300})

	require.NoError(t, store.ClearScores("breakout"))

	classic, err := store.TopScores("breakout", 10)
	require.NoError(t, err)
	assert.Empty(t, classic)

	endless, err := store.TopScores("breakout_endless", 10)
	require.NoError(t, err)
	assert.Len(t, endless, 1, "other modes are kept")
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		mustSave(t, store, ScoreEntry{GameID: "breakout", Score: i * 10})
	}

	scores, err := store.AllScores("breakout")
	require.NoError(t, err)
	require.Len(t, scores, 20)
	assert.Equal(t, 190, scores[0].Score)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("breakout")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	mustSave(t, store, ScoreEntry{GameID: "breakout_endless", Score: 100, Level: 2})
	mustSave(t, store, ScoreEntry{GameID: "breakout_endless", Score: 300, Level: 5})

	stats, err := store.GetGameStats("breakout_endless")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 5, stats.BestLevel)
	assert.Equal(t, int64(400), stats.TotalScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	assert.Empty(t, all)

	mustSave(t, store, ScoreEntry{GameID: "breakout", Score: 40})
	mustSave(t, store, ScoreEntry{GameID: "breakout_endless", Score: 100, Level: 2})
	mustSave(t, store, ScoreEntry{GameID: "breakout_endless", Score: 300, Level: 5})

	all, err = store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Contains(t, all, "breakout_endless")
	assert.Equal(t, 2, all["breakout_endless"].GamesCount)
	assert.Equal(t, 300, all["breakout_endless"].HighScore)
	assert.Equal(t, 40, all["breakout"].HighScore)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}
