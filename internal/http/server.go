package http

import (
	"net/http"

	"github.com/establishmentmg/minigames-bot/internal/config"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/http/handlers"
	"github.com/establishmentmg/minigames-bot/internal/metrics"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

func NewServer(statsStore stats.Store, teamStore teams.Store, index *gameindex.Index, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Stats:          statsStore,
		Teams:          teamStore,
		Index:          index,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/leaderboard", Chain(handlers.LeaderboardHandler(s.Stats), paramsMiddleware))
	s.Router.Handle("/search", Chain(handlers.SearchHandler(s.Stats), paramsMiddleware))
	s.Router.Handle("/members", Chain(handlers.ListMembersHandler(s.Stats), paramsMiddleware))
	s.Router.Handle("/teams", Chain(handlers.TeamLeaderboardHandler(s.Teams), paramsMiddleware))
	s.Router.Handle("/games", Chain(handlers.GameIndexHandler(s.Index), paramsMiddleware))
	s.Router.Handle("/clear", Chain(handlers.ClearStoreHandler(s.Stats), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
