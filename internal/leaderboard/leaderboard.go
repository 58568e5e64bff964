package leaderboard

import (
	"sort"
	"strings"
	"time"

	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/establishmentmg/minigames-bot/internal/stats"
)

// PageSize is the fixed number of entries per rendered page.
const PageSize = 8

// SearchResult is one event matched by a query, with the date parsed out of
// the event text for sorting.
type SearchResult struct {
	UserID    string    `json:"user_id"`
	EventText string    `json:"event_text"`
	Date      time.Time `json:"date"`
}

// Rank orders all user records for the leaderboard: wins descending, then
// battle-royale appearance count descending. The sort is stable so ties keep
// their incoming order.
func Rank(all map[string]stats.UserStats) []stats.UserStats {
	ranked := make([]stats.UserStats, 0, len(all))
	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		ranked = append(ranked, all[id])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return len(ranked[i].BRPlacements) > len(ranked[j].BRPlacements)
	})
	return ranked
}

// PageCount returns the number of pages needed for n entries.
func PageCount(n int) int {
	if n == 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// PageSlice returns the 1-based page of a ranked sequence.
func PageSlice[T any](seq []T, page int) []T {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(seq) {
		return nil
	}
	end := start + PageSize
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}

// Search matches the query case-insensitively against every event text of
// every user. Results are sorted by parsed date descending; undated entries
// sort last.
func Search(all map[string]stats.UserStats, query string, now time.Time) []SearchResult {
	lowered := strings.ToLower(query)

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var results []SearchResult
	for _, id := range ids {
		for _, event := range all[id].Events {
			if !strings.Contains(strings.ToLower(event), lowered) {
				continue
			}
			results = append(results, SearchResult{
				UserID:    id,
				EventText: event,
				Date:      events.ParseEventDate(event, now),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})
	return results
}
