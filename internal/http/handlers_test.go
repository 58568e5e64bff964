package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/establishmentmg/minigames-bot/internal/config"
	"github.com/establishmentmg/minigames-bot/internal/database"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/http/handlers"
	"github.com/establishmentmg/minigames-bot/internal/metrics"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with a test database.
func setupTestServer(t *testing.T) (*Server, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	statsStore := stats.New(db)
	teamStore := teams.New(db)
	cfg := config.Config{}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	server := NewServer(statsStore, teamStore, gameindex.New(), metricsSvc, metricsHandler, cfg)

	teardown := func() {
		if dbTeardown != nil {
			dbTeardown()
		}
		db.Close()
	}
	return server, teardown
}

func TestHealthCheckHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	req, err := http.NewRequest("GET", "/health", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestLeaderboardHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	require.NoError(t, server.Stats.Save("user1", 3, nil, []string{"cooking (Date: 1/2)"}, 0))
	require.NoError(t, server.Stats.Save("user2", 5, nil, []string{"karts (Date: 1/3)"}, 0))

	req, err := http.NewRequest("GET", "/leaderboard", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	// user2 has more wins and must come first.
	assert.Less(t, strings.Index(body, "user2"), strings.Index(body, "user1"))
}

func TestSearchHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	require.NoError(t, server.Stats.Save("user1", 1, nil, []string{"Cooking Contest (Date: 3/14)"}, 0))

	t.Run("requires query parameter", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/search", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/search?q=cooking", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Cooking Contest")
	})
}

func TestListMembersHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	require.NoError(t, server.Stats.Save("user1", 0, nil, nil, 0))
	require.NoError(t, server.Stats.Save("user2", 0, nil, nil, 0))

	req, err := http.NewRequest("GET", "/members", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler := handlers.ListMembersHandler(server.Stats)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "user1")
	assert.Contains(t, rr.Body.String(), "user2")
}

func TestTeamLeaderboardHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	req, err := http.NewRequest("GET", "/teams", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// The preset teams are seeded by the migrations.
	assert.Contains(t, rr.Body.String(), "Chaos")
	assert.Contains(t, rr.Body.String(), "Honor")
}

func TestGameIndexHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	t.Run("lists categories without a name", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/games", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "karts")
	})

	t.Run("looks up a single game", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/games?name=Hide+And+Seek", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "hide and seek")
	})

	t.Run("returns 404 for an unknown game", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/games?name=bogus", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestClearStoreHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	require.NoError(t, server.Stats.Save("user1", 2, nil, []string{"karts (Date: 1/1)"}, 0))

	t.Run("clears a single user", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/clear?userID=user1", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "user1")

		record, err := server.Stats.Get("user1")
		require.NoError(t, err)
		assert.Zero(t, record.Wins)
	})

	t.Run("returns 404 for an unknown user", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/clear?userID=ghost", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("clears the whole store", func(t *testing.T) {
		require.NoError(t, server.Stats.Save("user2", 1, nil, nil, 0))

		req, err := http.NewRequest("GET", "/clear", nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		server.Router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		all, err := server.Stats.GetAll()
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
