package stats_test

import (
	"database/sql"
	"testing"

	"github.com/establishmentmg/minigames-bot/internal/database"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (stats.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := stats.New(db)
	return store, db, dbTeardown
}

func TestGetReturnsZeroValueForUnknownUser(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	record, err := store.Get("nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", record.UserID)
	assert.Equal(t, 0, record.Wins)
	assert.Empty(t, record.Events)
	assert.Empty(t, record.BRPlacements)
	assert.Equal(t, 0, record.MarathonWins)
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	events := []string{"Cooking (Date: 7/25)", "Battle Royale (Date: 7/26)"}
	placements := []string{"2nd"}
	err := store.Save("user1", 1, placements, events, 3)
	require.NoError(t, err)

	record, err := store.Get("user1")
	require.NoError(t, err)
	assert.Equal(t, 1, record.Wins)
	assert.Equal(t, events, record.Events)
	assert.Equal(t, placements, record.BRPlacements)
	assert.Equal(t, 3, record.MarathonWins)

	// Get must not mutate anything; a second read is identical.
	again, err := store.Get("user1")
	require.NoError(t, err)
	assert.Equal(t, record, again)
}

func TestSaveOverwritesWholeRow(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Save("user1", 2, []string{"1st"}, []string{"a", "b"}, 0))
	require.NoError(t, store.Save("user1", 0, []string{}, []string{}, 1))

	record, err := store.Get("user1")
	require.NoError(t, err)
	assert.Equal(t, 0, record.Wins)
	assert.Empty(t, record.Events)
	assert.Empty(t, record.BRPlacements)
	assert.Equal(t, 1, record.MarathonWins)
}

func TestGetAll(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Save("user1", 1, nil, []string{"Karts (Date: 7/25)"}, 0))
	require.NoError(t, store.Save("user2", 0, nil, nil, 2))

	all, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all["user1"].Wins)
	assert.Equal(t, 2, all["user2"].MarathonWins)
}

func TestClearUser(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.Save("user1", 1, nil, []string{"Karts (Date: 7/25)"}, 0))

	require.NoError(t, store.ClearUser("user1"))
	record, err := store.Get("user1")
	require.NoError(t, err)
	assert.Equal(t, 0, record.Wins)
	assert.Empty(t, record.Events)

	err = store.ClearUser("user1")
	assert.ErrorIs(t, err, stats.ErrNoPriorData)
}

func TestComputeWins(t *testing.T) {
	tests := []struct {
		name       string
		events     []string
		placements []string
		want       int
	}{
		{"no history", nil, nil, 0},
		{"plain events all count", []string{"a", "b"}, nil, 2},
		{"first place keeps the win", []string{"br"}, []string{"1st"}, 1},
		{"first place is case-insensitive", []string{"br"}, []string{"1ST"}, 1},
		{"non-first placement does not count", []string{"a", "br"}, []string{"2nd"}, 1},
		{"mixed placements", []string{"a", "br1", "br2", "br3"}, []string{"1st", "4th", "2nd"}, 2},
		{"clamped at zero on desynced lists", []string{"br"}, []string{"2nd", "3rd"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.ComputeWins(tt.events, tt.placements))
		})
	}
}
