package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "minigames_commands_handled_total",
			Help: "The total number of bot commands handled.",
		}),
		CommandErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "minigames_command_errors_total",
			Help: "The total number of bot commands that ended in an error reply.",
		}),
		CommandDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "minigames_command_duration_seconds",
			Help:    "The duration of individual command handling.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		EventsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "minigames_events_registered_total",
			Help: "The total number of event registrations recorded.",
		}),
		TeamJoins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "minigames_team_joins_total",
			Help: "The total number of successful team joins.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "minigames_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsHandled,
		s.CommandErrors,
		s.CommandDuration,
		s.EventsRegistered,
		s.TeamJoins,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandsHandled() {
	s.CommandsHandled.Inc()
}

func (s *Service) IncCommandErrors() {
	s.CommandErrors.Inc()
}

func (s *Service) ObserveCommandDuration(seconds float64) {
	s.CommandDuration.Observe(seconds)
}

func (s *Service) IncEventsRegistered() {
	s.EventsRegistered.Inc()
}

func (s *Service) IncTeamJoins() {
	s.TeamJoins.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
