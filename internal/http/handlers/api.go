package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/leaderboard"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

func LeaderboardHandler(store stats.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}

		writeJSON(w, leaderboard.Rank(all))
	}
}

func SearchHandler(store stats.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "Missing query parameter 'q'", http.StatusBadRequest)
			return
		}

		all, err := store.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}

		writeJSON(w, leaderboard.Search(all, query, time.Now()))
	}
}

func ListMembersHandler(store stats.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}

		members := make([]string, 0, len(all))
		for userID := range all {
			members = append(members, userID)
		}
		sort.Strings(members)
		writeJSON(w, members)
	}
}

func TeamLeaderboardHandler(store teams.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := store.Leaderboard()
		if err != nil {
			http.Error(w, "Failed to get team leaderboard", http.StatusInternalServerError)
			log.Error("Failed to get team leaderboard from store", "error", err)
			return
		}

		writeJSON(w, board)
	}
}

func GameIndexHandler(index *gameindex.Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if name := r.URL.Query().Get("name"); name != "" {
			entry, ok := index.Lookup(name)
			if !ok {
				http.Error(w, "Unknown game mode", http.StatusNotFound)
				return
			}
			writeJSON(w, entry)
			return
		}

		listing := make(map[string][]string)
		for _, category := range index.Categories() {
			listing[category] = index.Games(category)
		}
		writeJSON(w, listing)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
