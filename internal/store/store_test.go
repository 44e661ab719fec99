package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/zodiac-tui/internal/store"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newHistory(t *testing.T) (*store.History, *time.Time) {
	t.Helper()

	database, err := store.Open(t.Context(), "", true)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, database.Close()) })

	now := time.Date(2025, 7, 23, 9, 0, 0, 0, time.UTC)

	return store.NewHistory(database).WithClock(func() time.Time { return now }), &now
}

func TestHistoryRecent(t *testing.T) {
	history, now := newHistory(t)

	for _, sign := range []string{"Leo", "Virgo", "Leo", "Aries"} {
		*now = now.Add(time.Minute)
		require.NoError(t, history.Record(t.Context(), sign))
	}

	visits, err := history.Recent(t.Context(), 5)
	require.NoError(t, err)
	require.Len(t, visits, 3)
	require.Equal(t, "Aries", visits[0].Sign)
	require.Equal(t, "Leo", visits[1].Sign)
	require.Equal(t, "Virgo", visits[2].Sign)
	require.True(t, visits[0].VisitedOn.Equal(*now))

	limited, errLimited := history.Recent(t.Context(), 1)
	require.NoError(t, errLimited)
	require.Len(t, limited, 1)

	none, errNone := history.Recent(t.Context(), 0)
	require.NoError(t, errNone)
	require.Empty(t, none)
}

func TestHistoryStats(t *testing.T) {
	history, now := newHistory(t)

	empty, err := history.Stats(t.Context(), "Pisces")
	require.NoError(t, err)
	require.Zero(t, empty.Count)
	require.True(t, empty.LastVisited.IsZero())

	require.NoError(t, history.Record(t.Context(), "Pisces"))
	first := *now
	*now = now.Add(time.Hour)
	require.NoError(t, history.Record(t.Context(), "Pisces"))

	stats, errStats := history.Stats(t.Context(), "Pisces")
	require.NoError(t, errStats)
	require.Equal(t, 2, stats.Count)
	require.True(t, stats.LastVisited.Equal(*now))
	require.True(t, stats.FirstVisited.Equal(first))
}

func TestOpenFileAndMigrateDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	database, err := store.Open(t.Context(), dbPath, true)
	require.NoError(t, err)
	require.NoError(t, store.NewHistory(database).Record(t.Context(), "Gemini"))

	require.NoError(t, store.Migrate(database, store.MigrateDn))
	_, errQuery := store.NewHistory(database).Recent(t.Context(), 1)
	require.ErrorIs(t, errQuery, store.ErrQuery)

	require.NoError(t, store.Migrate(database, store.MigrateUp))
	require.NoError(t, database.Close())
}
