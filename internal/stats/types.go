package stats

import (
	"database/sql"
	"sync"
)

// store handles all database operations for user stats.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// UserStats is the full per-user record. Events holds the append-ordered
// event log ("<name> (Date: <token>)" strings); BRPlacements holds the
// placement label for each battle-royale entry in Events, in the same
// relative order.
type UserStats struct {
	UserID       string   `json:"user_id"`
	Wins         int      `json:"wins"`
	BRPlacements []string `json:"br_placements"`
	Events       []string `json:"events"`
	MarathonWins int      `json:"marathon_wins"`
}
