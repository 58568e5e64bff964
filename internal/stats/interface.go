package stats

// Store defines the interface for reading and writing user stats.
type Store interface {
	Get(userID string) (UserStats, error)
	Save(userID string, wins int, brPlacements, events []string, marathonWins int) error
	GetAll() (map[string]UserStats, error)
	ClearUser(userID string) error
	Clear()
}
