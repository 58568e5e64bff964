package teams

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	TeamsFunc       func() ([]Team, error)
	JoinFunc        func(userID, teamName string) (Team, error)
	LeaveFunc       func(userID string) error
	MemberTeamFunc  func(userID string) (Team, bool, error)
	MembersFunc     func(teamID int) ([]string, error)
	TeamStatsFunc   func(teamID int) (TeamStats, error)
	LeaderboardFunc func() ([]TeamStats, error)

	// Call records
	JoinCalls []struct {
		UserID   string
		TeamName string
	}
	LeaveCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) Teams() ([]Team, error) {
	if m.TeamsFunc != nil {
		return m.TeamsFunc()
	}
	return nil, nil
}

func (m *MockStore) Join(userID, teamName string) (Team, error) {
	m.mu.Lock()
	m.JoinCalls = append(m.JoinCalls, struct {
		UserID   string
		TeamName string
	}{userID, teamName})
	m.mu.Unlock()
	if m.JoinFunc != nil {
		return m.JoinFunc(userID, teamName)
	}
	return Team{}, nil
}

func (m *MockStore) Leave(userID string) error {
	m.mu.Lock()
	m.LeaveCalls = append(m.LeaveCalls, userID)
	m.mu.Unlock()
	if m.LeaveFunc != nil {
		return m.LeaveFunc(userID)
	}
	return nil
}

func (m *MockStore) MemberTeam(userID string) (Team, bool, error) {
	if m.MemberTeamFunc != nil {
		return m.MemberTeamFunc(userID)
	}
	return Team{}, false, nil
}

func (m *MockStore) Members(teamID int) ([]string, error) {
	if m.MembersFunc != nil {
		return m.MembersFunc(teamID)
	}
	return nil, nil
}

func (m *MockStore) TeamStats(teamID int) (TeamStats, error) {
	if m.TeamStatsFunc != nil {
		return m.TeamStatsFunc(teamID)
	}
	return TeamStats{}, nil
}

func (m *MockStore) Leaderboard() ([]TeamStats, error) {
	if m.LeaderboardFunc != nil {
		return m.LeaderboardFunc()
	}
	return nil, nil
}
