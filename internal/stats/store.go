package stats

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNoPriorData is returned when a clear targets a user with no stored stats.
var ErrNoPriorData = errors.New("no stats recorded for user")

// New creates a new stats Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Get returns the stored record for a user, or a zero-value record if none
// exists. It never fails for a well-formed id.
func (s *store) Get(userID string) (UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT wins, br_placements, events, marathon_wins
		FROM stats WHERE user_id = ?
	`, userID)

	record := UserStats{UserID: userID, BRPlacements: []string{}, Events: []string{}}
	var brJSON, eventsJSON sql.NullString
	err := row.Scan(&record.Wins, &brJSON, &eventsJSON, &record.MarathonWins)
	if err == sql.ErrNoRows {
		return record, nil
	}
	if err != nil {
		return record, fmt.Errorf("failed to query stats for %s: %w", userID, err)
	}

	record.BRPlacements = decodeList(brJSON, userID, "br_placements")
	record.Events = decodeList(eventsJSON, userID, "events")
	return record, nil
}

// Save upserts the whole row. This is the only write path; all mutation
// flows read-modify-write through Get then Save.
func (s *store) Save(userID string, wins int, brPlacements, events []string, marathonWins int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	brJSON, err := encodeList(brPlacements)
	if err != nil {
		return fmt.Errorf("failed to encode br_placements: %w", err)
	}
	eventsJSON, err := encodeList(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO stats (user_id, wins, br_placements, events, marathon_wins)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			wins = excluded.wins,
			br_placements = excluded.br_placements,
			events = excluded.events,
			marathon_wins = excluded.marathon_wins;
	`, userID, wins, brJSON, eventsJSON, marathonWins)
	if err != nil {
		return fmt.Errorf("failed to save stats for %s: %w", userID, err)
	}
	return nil
}

// GetAll returns every stored record keyed by user id.
func (s *store) GetAll() (map[string]UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT user_id, wins, br_placements, events, marathon_wins FROM stats
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]UserStats)
	for rows.Next() {
		var record UserStats
		var brJSON, eventsJSON sql.NullString
		if err := rows.Scan(&record.UserID, &record.Wins, &brJSON, &eventsJSON, &record.MarathonWins); err != nil {
			log.Error("Failed to scan stats row", "error", err)
			continue
		}
		record.BRPlacements = decodeList(brJSON, record.UserID, "br_placements")
		record.Events = decodeList(eventsJSON, record.UserID, "events")
		all[record.UserID] = record
	}
	return all, rows.Err()
}

// ClearUser removes a user's row entirely.
func (s *store) ClearUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM stats WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to clear stats for %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoPriorData
	}
	log.Info("Cleared all stats for user", "userID", userID)
	return nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM stats"); err != nil {
		log.Error("Failed to clear stats table", "error", err)
	}
}

// ComputeWins is the canonical wins reconciliation: every logged event counts
// as a win except battle-royale entries that did not place first. The stored
// wins column is a cache of this value, recomputed on every mutation.
func ComputeWins(events, brPlacements []string) int {
	wins := len(events)
	for _, placement := range brPlacements {
		if !strings.EqualFold(placement, "1st") {
			wins--
		}
	}
	if wins < 0 {
		wins = 0
	}
	return wins
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeList(col sql.NullString, userID, name string) []string {
	if !col.Valid || col.String == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(col.String), &list); err != nil {
		log.Error("Failed to unmarshal stats column", "column", name, "userID", userID, "error", err)
		return []string{}
	}
	return list
}
