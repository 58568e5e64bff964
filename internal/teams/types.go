package teams

import (
	"database/sql"
	"sync"
)

// MaxTeamSize caps membership per team.
const MaxTeamSize = 10

// pointsTable maps placement labels to team points. Unlisted labels
// contribute nothing.
var pointsTable = map[string]int{
	"1st": 100,
	"2nd": 70,
	"3rd": 50,
	"4th": 30,
}

// store handles all database operations for teams and memberships.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Team is one of the preset teams.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeamStats aggregates a team's member stats for the team leaderboard.
type TeamStats struct {
	Team        Team     `json:"team"`
	MemberCount int      `json:"member_count"`
	TotalWins   int      `json:"total_wins"`
	Placements  []string `json:"placements"`
	Points      int      `json:"points"`
}
