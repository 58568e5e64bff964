package teams_test

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/establishmentmg/minigames-bot/internal/database"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (teams.Store, stats.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return teams.New(db), stats.New(db), db, dbTeardown
}

// addEvents gives a user a minimal event history so they can join a team.
func addEvents(t *testing.T, store stats.Store, userID string, wins int, placements []string, eventCount int) {
	t.Helper()
	events := make([]string, 0, eventCount)
	for i := 0; i < eventCount; i++ {
		events = append(events, fmt.Sprintf("Cooking (Date: 7/%d)", i+1))
	}
	require.NoError(t, store.Save(userID, wins, placements, events, 0))
}

func TestTeamsArePreset(t *testing.T) {
	store, _, _, teardown := setupTestDB(t)
	defer teardown()

	all, err := store.Teams()
	require.NoError(t, err)
	require.Len(t, all, 4)
	names := []string{all[0].Name, all[1].Name, all[2].Name, all[3].Name}
	assert.Equal(t, []string{"Chaos", "Revel", "Hearth", "Honor"}, names)
}

func TestJoinRules(t *testing.T) {
	store, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	t.Run("invalid team name", func(t *testing.T) {
		_, err := store.Join("user1", "Pirates")
		assert.ErrorIs(t, err, teams.ErrInvalidTeam)
	})

	t.Run("no recorded events", func(t *testing.T) {
		_, err := store.Join("user1", "Chaos")
		assert.ErrorIs(t, err, teams.ErrNoEvents)
	})

	t.Run("join succeeds case-insensitively", func(t *testing.T) {
		addEvents(t, statsStore, "user1", 1, nil, 1)
		team, err := store.Join("user1", "chaos")
		require.NoError(t, err)
		assert.Equal(t, "Chaos", team.Name)
	})

	t.Run("already a member", func(t *testing.T) {
		_, err := store.Join("user1", "Revel")
		assert.ErrorIs(t, err, teams.ErrAlreadyMember)
	})

	t.Run("team is full", func(t *testing.T) {
		for i := 0; i < teams.MaxTeamSize; i++ {
			userID := fmt.Sprintf("filler%d", i)
			addEvents(t, statsStore, userID, 1, nil, 1)
			_, err := store.Join(userID, "Revel")
			require.NoError(t, err)
		}
		addEvents(t, statsStore, "straggler", 1, nil, 1)
		_, err := store.Join("straggler", "Revel")
		assert.ErrorIs(t, err, teams.ErrTeamFull)
	})
}

func TestLeave(t *testing.T) {
	store, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	assert.ErrorIs(t, store.Leave("user1"), teams.ErrNotMember)

	addEvents(t, statsStore, "user1", 1, nil, 1)
	_, err := store.Join("user1", "Hearth")
	require.NoError(t, err)

	require.NoError(t, store.Leave("user1"))
	assert.ErrorIs(t, store.Leave("user1"), teams.ErrNotMember)

	// After leaving, the user may join another team.
	_, err = store.Join("user1", "Honor")
	require.NoError(t, err)
}

func TestMemberTeam(t *testing.T) {
	store, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	_, ok, err := store.MemberTeam("user1")
	require.NoError(t, err)
	assert.False(t, ok)

	addEvents(t, statsStore, "user1", 1, nil, 1)
	_, err = store.Join("user1", "Chaos")
	require.NoError(t, err)

	team, ok, err := store.MemberTeam("user1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Chaos", team.Name)
}

func TestTeamStatsAggregation(t *testing.T) {
	store, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	addEvents(t, statsStore, "user1", 3, []string{"1st"}, 3)
	addEvents(t, statsStore, "user2", 2, []string{"3rd"}, 2)
	for _, userID := range []string{"user1", "user2"} {
		_, err := store.Join(userID, "Chaos")
		require.NoError(t, err)
	}

	all, err := store.Teams()
	require.NoError(t, err)
	chaos := all[0]

	entry, err := store.TeamStats(chaos.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.MemberCount)
	assert.Equal(t, 5, entry.TotalWins)
	assert.ElementsMatch(t, []string{"1st", "3rd"}, entry.Placements)
	// 5 wins * 100 + 100 for 1st + 50 for 3rd.
	assert.Equal(t, 750, entry.Points)
}

func TestTeamLeaderboard(t *testing.T) {
	store, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	addEvents(t, statsStore, "user1", 1, nil, 1)
	_, err := store.Join("user1", "Honor")
	require.NoError(t, err)

	board, err := store.Leaderboard()
	require.NoError(t, err)
	require.Len(t, board, 4)
	assert.Equal(t, "Honor", board[0].Team.Name)
	assert.Equal(t, 100, board[0].Points)
	for _, entry := range board[1:] {
		assert.Equal(t, 0, entry.Points)
	}
}

func TestUnknownPlacementScoresZero(t *testing.T) {
	store, statsStore, _, teardown := setupTestDB(t)
	defer teardown()

	addEvents(t, statsStore, "user1", 1, []string{"9th"}, 1)
	_, err := store.Join("user1", "Revel")
	require.NoError(t, err)

	all, err := store.Teams()
	require.NoError(t, err)
	revel := all[1]

	entry, err := store.TeamStats(revel.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, entry.Points)
}
