package gameindex_test

import (
	"testing"

	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	index := gameindex.New()

	entry, ok := index.Lookup("Cooking")
	require.True(t, ok)
	assert.Equal(t, "Survival", entry.Category)
	assert.Contains(t, entry.Description, "fellow chefs")

	entry, ok = index.Lookup("  LOCATE THE SPY ")
	require.True(t, ok)
	assert.Equal(t, "Social Deduction", entry.Category)

	_, ok = index.Lookup("chess")
	assert.False(t, ok)
}

func TestCategoriesAndGames(t *testing.T) {
	index := gameindex.New()

	categories := index.Categories()
	assert.Equal(t, []string{"Arcade", "Social Deduction", "Survival"}, categories)

	games := index.Games("Arcade")
	assert.Equal(t, []string{"city rushdown", "hook chasers", "karts"}, games)

	assert.Nil(t, index.Games("Nonexistent"))
	assert.Len(t, index.All(), 11)
}
