package events

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/establishmentmg/minigames-bot/internal/stats"
)

var (
	// ErrMissingArgument is returned when a required field for the chosen
	// registration branch is absent. No partial write occurs.
	ErrMissingArgument = errors.New("missing required argument")
	// ErrNotFound is returned when an edit or removal target does not exist.
	ErrNotFound = errors.New("event not found")
)

// Registrar owns the event-log mutation flows. Every operation is a single
// read-modify-write through the stats store, with the wins cache recomputed
// from the event log before saving.
type Registrar struct {
	store stats.Store
}

// New creates a new Registrar.
func New(store stats.Store) *Registrar {
	return &Registrar{store: store}
}

// Register appends an event to a user's history. Battle-royale events
// require a placement label and push to both the event log and the
// placement list; regular events push to the event log only.
func (r *Registrar) Register(userID, eventName string, isBattleRoyale bool, placement, date string) (stats.UserStats, error) {
	if eventName == "" || date == "" {
		return stats.UserStats{}, ErrMissingArgument
	}
	if isBattleRoyale && placement == "" {
		return stats.UserStats{}, ErrMissingArgument
	}

	record, err := r.store.Get(userID)
	if err != nil {
		return stats.UserStats{}, err
	}

	record.Events = append(record.Events, FormatEvent(eventName, date))
	if isBattleRoyale {
		record.BRPlacements = append(record.BRPlacements, placement)
	}
	record.Wins = stats.ComputeWins(record.Events, record.BRPlacements)

	if err := r.save(record); err != nil {
		return stats.UserStats{}, err
	}
	log.Info("Registered event", "userID", userID, "event", eventName, "battleRoyale", isBattleRoyale, "wins", record.Wins)
	return record, nil
}

// Edit replaces an existing event entry in place. The target is located by
// exact match first, then by a date-fragment-agnostic comparison to tolerate
// formatting drift.
func (r *Registrar) Edit(userID, oldEvent, newEvent string) (stats.UserStats, error) {
	record, err := r.store.Get(userID)
	if err != nil {
		return stats.UserStats{}, err
	}

	index := -1
	for i, event := range record.Events {
		if event == oldEvent {
			index = i
			break
		}
	}
	if index == -1 {
		normalized := StripDate(oldEvent)
		for i, event := range record.Events {
			if StripDate(event) == normalized {
				index = i
				break
			}
		}
	}
	if index == -1 {
		return stats.UserStats{}, ErrNotFound
	}

	record.Events[index] = newEvent
	record.Wins = stats.ComputeWins(record.Events, record.BRPlacements)

	if err := r.save(record); err != nil {
		return stats.UserStats{}, err
	}
	log.Info("Edited event", "userID", userID, "old", oldEvent, "new", newEvent)
	return record, nil
}

// RemoveLast pops the most recent event and, independently, the most recent
// placement. The two tails are not guaranteed to belong to the same logical
// entry; this mirrors the established command behavior. Safe on an empty
// history.
func (r *Registrar) RemoveLast(userID string) (stats.UserStats, error) {
	record, err := r.store.Get(userID)
	if err != nil {
		return stats.UserStats{}, err
	}

	if len(record.Events) > 0 {
		record.Events = record.Events[:len(record.Events)-1]
	}
	if len(record.BRPlacements) > 0 {
		record.BRPlacements = record.BRPlacements[:len(record.BRPlacements)-1]
	}
	record.Wins = stats.ComputeWins(record.Events, record.BRPlacements)

	if err := r.save(record); err != nil {
		return stats.UserStats{}, err
	}
	log.Info("Removed last event", "userID", userID, "wins", record.Wins)
	return record, nil
}

// RemoveSpecific removes the first event whose text contains both the name
// substring (case-insensitive) and the date substring. When the removed
// entry is battle-royale-flagged, the placement at the corresponding rank is
// removed as well.
func (r *Registrar) RemoveSpecific(userID, nameSub, dateSub string) (stats.UserStats, error) {
	if nameSub == "" || dateSub == "" {
		return stats.UserStats{}, ErrMissingArgument
	}

	record, err := r.store.Get(userID)
	if err != nil {
		return stats.UserStats{}, err
	}

	lowerName := strings.ToLower(nameSub)
	index := -1
	for i, event := range record.Events {
		if strings.Contains(strings.ToLower(event), lowerName) && strings.Contains(event, dateSub) {
			index = i
			break
		}
	}
	if index == -1 {
		return stats.UserStats{}, ErrNotFound
	}

	if IsBattleRoyale(record.Events[index]) {
		// Rank of the removed entry among the battle-royale-flagged events.
		rank := 0
		for _, event := range record.Events[:index] {
			if IsBattleRoyale(event) {
				rank++
			}
		}
		if rank < len(record.BRPlacements) {
			record.BRPlacements = append(record.BRPlacements[:rank], record.BRPlacements[rank+1:]...)
		}
	}
	record.Events = append(record.Events[:index], record.Events[index+1:]...)
	record.Wins = stats.ComputeWins(record.Events, record.BRPlacements)

	if err := r.save(record); err != nil {
		return stats.UserStats{}, err
	}
	log.Info("Removed event", "userID", userID, "name", nameSub, "date", dateSub, "wins", record.Wins)
	return record, nil
}

// AddMarathonWin increments the independent marathon counter.
func (r *Registrar) AddMarathonWin(userID string) (stats.UserStats, error) {
	record, err := r.store.Get(userID)
	if err != nil {
		return stats.UserStats{}, err
	}

	record.MarathonWins++
	if err := r.save(record); err != nil {
		return stats.UserStats{}, err
	}
	log.Info("Added marathon win", "userID", userID, "marathonWins", record.MarathonWins)
	return record, nil
}

func (r *Registrar) save(record stats.UserStats) error {
	return r.store.Save(record.UserID, record.Wins, record.BRPlacements, record.Events, record.MarathonWins)
}
