package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	CommandsHandled    prometheus.Counter
	CommandErrors      prometheus.Counter
	CommandDuration    prometheus.Histogram
	EventsRegistered   prometheus.Counter
	TeamJoins          prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
