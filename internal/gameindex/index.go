package gameindex

import (
	"sort"
	"strings"
)

// Index is the read-only game-mode encyclopedia. It is loaded once at
// process start and never mutated.
type Index struct {
	categories map[string]map[string]string
}

// Entry is a resolved game description.
type Entry struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// New builds the index from the static game data.
func New() *Index {
	return &Index{categories: gameData}
}

// Lookup resolves a game name case-insensitively across all categories.
func (idx *Index) Lookup(name string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for category, games := range idx.categories {
		if description, ok := games[key]; ok {
			return Entry{Category: category, Name: key, Description: description}, true
		}
	}
	return Entry{}, false
}

// Categories lists the category names, sorted.
func (idx *Index) Categories() []string {
	names := make([]string, 0, len(idx.categories))
	for category := range idx.categories {
		names = append(names, category)
	}
	sort.Strings(names)
	return names
}

// Games lists the game names in a category, sorted.
func (idx *Index) Games(category string) []string {
	games, ok := idx.categories[category]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(games))
	for name := range games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All lists every game name across categories, sorted.
func (idx *Index) All() []string {
	var names []string
	for _, games := range idx.categories {
		for name := range games {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
