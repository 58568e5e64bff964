package teams

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidTeam is returned when the team name is not one of the presets.
	ErrInvalidTeam = errors.New("not a valid team")
	// ErrNoEvents is returned when a user with no recorded events tries to join.
	ErrNoEvents = errors.New("no recorded events")
	// ErrAlreadyMember is returned when the user already belongs to a team.
	ErrAlreadyMember = errors.New("already on a team")
	// ErrNotMember is returned when the user belongs to no team.
	ErrNotMember = errors.New("not on a team")
	// ErrTeamFull is returned when the target team is at capacity.
	ErrTeamFull = errors.New("team is full")
)

// New creates a new teams Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// Teams lists the preset teams in creation order.
func (s *store) Teams() ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM teams ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// Join enforces the membership rules before inserting: the team name must be
// a preset, the user must have at least one recorded event, must not already
// belong to a team, and the target team must have free capacity.
func (s *store) Join(userID, teamName string) (Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamByNameLocked(teamName)
	if err != nil {
		return Team{}, err
	}

	hasEvents, err := s.userHasEventsLocked(userID)
	if err != nil {
		return Team{}, err
	}
	if !hasEvents {
		return Team{}, ErrNoEvents
	}

	var member bool
	err = s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM team_members WHERE user_id = ?)", userID).Scan(&member)
	if err != nil {
		return Team{}, fmt.Errorf("failed to check membership for %s: %w", userID, err)
	}
	if member {
		return Team{}, ErrAlreadyMember
	}

	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM team_members WHERE team_id = ?", team.ID).Scan(&count)
	if err != nil {
		return Team{}, fmt.Errorf("failed to count members of team %d: %w", team.ID, err)
	}
	if count >= MaxTeamSize {
		return Team{}, ErrTeamFull
	}

	_, err = s.db.Exec("INSERT INTO team_members (user_id, team_id) VALUES (?, ?)", userID, team.ID)
	if err != nil {
		return Team{}, fmt.Errorf("failed to add %s to team %s: %w", userID, team.Name, err)
	}
	log.Info("User joined team", "userID", userID, "team", team.Name)
	return team, nil
}

// Leave deletes the user's membership row.
func (s *store) Leave(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM team_members WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to remove %s from their team: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotMember
	}
	log.Info("User left team", "userID", userID)
	return nil
}

// MemberTeam returns the team a user belongs to, if any.
func (s *store) MemberTeam(userID string) (Team, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var team Team
	err := s.db.QueryRow(`
		SELECT t.id, t.name FROM teams t
		JOIN team_members tm ON tm.team_id = t.id
		WHERE tm.user_id = ?
	`, userID).Scan(&team.ID, &team.Name)
	if err == sql.ErrNoRows {
		return Team{}, false, nil
	}
	if err != nil {
		return Team{}, false, fmt.Errorf("failed to query team for %s: %w", userID, err)
	}
	return team, true, nil
}

// Members lists the member user ids of a team.
func (s *store) Members(teamID int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.membersLocked(teamID)
}

// TeamStats aggregates wins and placements across the team's members and
// scores them: 100 points per win plus the placement table.
func (s *store) TeamStats(teamID int) (TeamStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var team Team
	err := s.db.QueryRow("SELECT id, name FROM teams WHERE id = ?", teamID).Scan(&team.ID, &team.Name)
	if err == sql.ErrNoRows {
		return TeamStats{}, ErrInvalidTeam
	}
	if err != nil {
		return TeamStats{}, fmt.Errorf("failed to query team %d: %w", teamID, err)
	}
	return s.teamStatsLocked(team)
}

// Leaderboard computes TeamStats for every team, sorted by points descending.
func (s *store) Leaderboard() ([]TeamStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name FROM teams ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var board []TeamStats
	for rows.Next() {
		var team Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, err
		}
		entry, err := s.teamStatsLocked(team)
		if err != nil {
			log.Error("Failed to aggregate team stats", "team", team.Name, "error", err)
			continue
		}
		board = append(board, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Points > board[j].Points
	})
	return board, nil
}

func (s *store) teamStatsLocked(team Team) (TeamStats, error) {
	members, err := s.membersLocked(team.ID)
	if err != nil {
		return TeamStats{}, err
	}

	entry := TeamStats{Team: team, MemberCount: len(members), Placements: []string{}}
	for _, userID := range members {
		var wins int
		var brJSON sql.NullString
		err := s.db.QueryRow("SELECT wins, br_placements FROM stats WHERE user_id = ?", userID).Scan(&wins, &brJSON)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return TeamStats{}, fmt.Errorf("failed to query stats for member %s: %w", userID, err)
		}
		entry.TotalWins += wins
		if brJSON.Valid && brJSON.String != "" {
			var placements []string
			if err := json.Unmarshal([]byte(brJSON.String), &placements); err != nil {
				log.Error("Failed to unmarshal br_placements", "userID", userID, "error", err)
				continue
			}
			entry.Placements = append(entry.Placements, placements...)
		}
	}

	entry.Points = entry.TotalWins * 100
	for _, placement := range entry.Placements {
		entry.Points += pointsTable[strings.ToLower(placement)]
	}
	return entry, nil
}

func (s *store) membersLocked(teamID int) ([]string, error) {
	rows, err := s.db.Query("SELECT user_id FROM team_members WHERE team_id = ? ORDER BY user_id", teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of team %d: %w", teamID, err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		members = append(members, userID)
	}
	return members, rows.Err()
}

func (s *store) teamByNameLocked(name string) (Team, error) {
	var team Team
	err := s.db.QueryRow("SELECT id, name FROM teams WHERE name = ? COLLATE NOCASE", name).Scan(&team.ID, &team.Name)
	if err == sql.ErrNoRows {
		return Team{}, ErrInvalidTeam
	}
	if err != nil {
		return Team{}, fmt.Errorf("failed to query team %q: %w", name, err)
	}
	return team, nil
}

func (s *store) userHasEventsLocked(userID string) (bool, error) {
	var eventsJSON sql.NullString
	err := s.db.QueryRow("SELECT events FROM stats WHERE user_id = ?", userID).Scan(&eventsJSON)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query events for %s: %w", userID, err)
	}
	if !eventsJSON.Valid || eventsJSON.String == "" {
		return false, nil
	}
	var events []string
	if err := json.Unmarshal([]byte(eventsJSON.String), &events); err != nil {
		return false, fmt.Errorf("failed to unmarshal events for %s: %w", userID, err)
	}
	return len(events) > 0, nil
}
