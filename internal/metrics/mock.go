package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	commandsHandled  int
	commandErrors    int
	commandDurations []float64
	eventsRegistered int
	teamJoins        int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		commandDurations: make([]float64, 0),
	}
}

func (m *Mock) IncCommandsHandled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsHandled++
}

func (m *Mock) IncCommandErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandErrors++
}

func (m *Mock) ObserveCommandDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandDurations = append(m.commandDurations, seconds)
}

func (m *Mock) IncEventsRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsRegistered++
}

func (m *Mock) IncTeamJoins() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamJoins++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// CommandsHandled returns the number of times IncCommandsHandled was called.
func (m *Mock) CommandsHandled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandsHandled
}

// CommandErrors returns the number of times IncCommandErrors was called.
func (m *Mock) CommandErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commandErrors
}

// EventsRegistered returns the number of times IncEventsRegistered was called.
func (m *Mock) EventsRegistered() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eventsRegistered
}

// TeamJoins returns the number of times IncTeamJoins was called.
func (m *Mock) TeamJoins() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamJoins
}
