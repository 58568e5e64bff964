package teams

// Store defines the interface for team membership and aggregation.
type Store interface {
	Teams() ([]Team, error)
	Join(userID, teamName string) (Team, error)
	Leave(userID string) error
	MemberTeam(userID string) (Team, bool, error)
	Members(teamID int) ([]string, error)
	TeamStats(teamID int) (TeamStats, error)
	Leaderboard() ([]TeamStats, error)
}
