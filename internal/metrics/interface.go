package metrics

// Metrics is the instrumentation surface consumed by the rest of the
// application.
type Metrics interface {
	IncCommandsHandled()
	IncCommandErrors()
	ObserveCommandDuration(seconds float64)
	IncEventsRegistered()
	IncTeamJoins()
	SetStartupTime(seconds float64)
}
