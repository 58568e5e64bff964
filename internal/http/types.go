package http

import (
	"net/http"

	"github.com/establishmentmg/minigames-bot/internal/config"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/metrics"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

type Server struct {
	Stats          stats.Store
	Teams          teams.Store
	Index          *gameindex.Index
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
