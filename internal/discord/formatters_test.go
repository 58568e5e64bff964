package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardPages(t *testing.T) {
	ranked := make([]stats.UserStats, 0, 10)
	for i := 0; i < 10; i++ {
		ranked = append(ranked, stats.UserStats{UserID: fmt.Sprintf("user%d", i), Wins: 10 - i})
	}

	pages := leaderboardPages(ranked)
	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Fields, 8)
	assert.Len(t, pages[1].Fields, 2)
	assert.Contains(t, pages[0].Fields[0].Value, "<@user0>")
	assert.Equal(t, "#9", pages[1].Fields[0].Name)
	assert.Equal(t, "Page 2/2", pages[1].Footer.Text)
}

func TestLeaderboardPagesEmpty(t *testing.T) {
	pages := leaderboardPages(nil)
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0].Description, "No stats recorded")
}

func TestIndexPages(t *testing.T) {
	pages := indexPages(gameindex.New())
	require.Len(t, pages, 3)
	assert.Contains(t, pages[0].Title, "Arcade")
	assert.Contains(t, pages[0].Description, "Karts")
}

func TestPaginatorTurn(t *testing.T) {
	p := newPaginator()
	defer p.stop()

	pages := indexPages(gameindex.New())
	first, components := p.start(pages)
	require.NotNil(t, first)
	require.Len(t, components, 1)
	assert.Equal(t, pages[0], first)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	prevButton, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	prefix := strings.TrimSuffix(prevButton.CustomID, ":prev")

	next, _, ok := p.turn(prefix + ":next")
	require.True(t, ok)
	assert.Equal(t, pages[1], next)

	prev, _, ok := p.turn(prefix + ":prev")
	require.True(t, ok)
	assert.Equal(t, pages[0], prev)

	// Stepping back past the first page stays on the first page.
	still, _, ok := p.turn(prefix + ":prev")
	require.True(t, ok)
	assert.Equal(t, pages[0], still)

	_, _, ok = p.turn("pg:unknown:next")
	assert.False(t, ok)
}

func TestUserMessageMapping(t *testing.T) {
	assert.Contains(t, userMessage(events.ErrMissingArgument), "required field")
	assert.Contains(t, userMessage(teams.ErrTeamFull), "full")
	assert.Contains(t, userMessage(teams.ErrInvalidTeam), "Chaos")
	assert.Contains(t, userMessage(stats.ErrNoPriorData), "no recorded stats")
	assert.Contains(t, userMessage(assert.AnError), "Something went wrong")
}
