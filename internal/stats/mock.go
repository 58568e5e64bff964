package stats

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use. When no spy func is set, it behaves as an
// in-memory store.
type MockStore struct {
	mu      sync.Mutex
	records map[string]UserStats

	// Spies for method calls
	GetFunc       func(userID string) (UserStats, error)
	SaveFunc      func(userID string, wins int, brPlacements, events []string, marathonWins int) error
	GetAllFunc    func() (map[string]UserStats, error)
	ClearUserFunc func(userID string) error

	// Call records
	SaveCalls      []UserStats
	ClearUserCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{records: make(map[string]UserStats)}
}

func (m *MockStore) Get(userID string) (UserStats, error) {
	if m.GetFunc != nil {
		return m.GetFunc(userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if record, ok := m.records[userID]; ok {
		return record, nil
	}
	return UserStats{UserID: userID, BRPlacements: []string{}, Events: []string{}}, nil
}

func (m *MockStore) Save(userID string, wins int, brPlacements, events []string, marathonWins int) error {
	record := UserStats{
		UserID:       userID,
		Wins:         wins,
		BRPlacements: brPlacements,
		Events:       events,
		MarathonWins: marathonWins,
	}
	m.mu.Lock()
	m.SaveCalls = append(m.SaveCalls, record)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(userID, wins, brPlacements, events, marathonWins)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = record
	return nil
}

func (m *MockStore) GetAll() (map[string]UserStats, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make(map[string]UserStats, len(m.records))
	for id, record := range m.records {
		all[id] = record
	}
	return all, nil
}

func (m *MockStore) ClearUser(userID string) error {
	m.mu.Lock()
	m.ClearUserCalls = append(m.ClearUserCalls, userID)
	m.mu.Unlock()
	if m.ClearUserFunc != nil {
		return m.ClearUserFunc(userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[userID]; !ok {
		return ErrNoPriorData
	}
	delete(m.records, userID)
	return nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]UserStats)
}
