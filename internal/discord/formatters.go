package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/leaderboard"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	colorGreen    = 0x2ecc71
	colorDarkTeal = 0x11806a
	colorGold     = 0xf1c40f
)

const helpText = "# __Bot Commands__\n" +
	"- **/stats [user]** - Displays stats for all or a specific user\n" +
	"- **/register <user> <event_name> <date>** - Register an event result\n" +
	"- **/edit <user> <old_event> <new_event>** - Edit a registered event\n" +
	"- **/removelast <user>** - Remove a user's most recent event\n" +
	"- **/remove <user> <event_name> <date>** - Remove a specific event\n" +
	"- **/addmarathon <user>** - Add a marathon win\n" +
	"- **/index** - Show list of game modes\n" +
	"- **/game <game_name>** - Show a game mode description\n" +
	"- **/search <game_name>** - Show winners of a specific game mode\n" +
	"- **/tlist** - Show team commands list\n"

const teamHelpText = "# __Team Commands__\n" +
	"- **/registerteam <team_name>** - Join one of the four teams\n" +
	"- **/leaveteam** - Leave your current team\n" +
	"- **/team [member]** - Check a member's team\n" +
	"- **/teamstats [team_name]** - Show a team's aggregate stats\n" +
	"- **/teamleaderboard** - Show the team leaderboard\n"

// leaderboardPages renders the ranked users as embed pages of fixed size.
func leaderboardPages(ranked []stats.UserStats) []*discordgo.MessageEmbed {
	if len(ranked) == 0 {
		return []*discordgo.MessageEmbed{{
			Title:       "EM Stats",
			Description: "No stats recorded yet.",
			Color:       colorGreen,
		}}
	}

	pageCount := leaderboard.PageCount(len(ranked))
	pages := make([]*discordgo.MessageEmbed, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		embed := &discordgo.MessageEmbed{
			Title: "EM Stats",
			Color: colorGreen,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Page %d/%d", page, pageCount),
			},
		}
		offset := (page - 1) * leaderboard.PageSize
		for rank, record := range leaderboard.PageSlice(ranked, page) {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: fmt.Sprintf("#%d", offset+rank+1),
				Value: fmt.Sprintf("<@%s> — Wins: %d | Battle Royales: %d | Marathons: %d",
					record.UserID, record.Wins, len(record.BRPlacements), record.MarathonWins),
				Inline: false,
			})
		}
		pages = append(pages, embed)
	}
	return pages
}

// userStatsEmbed renders one user's full record.
func userStatsEmbed(record stats.UserStats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "EM Stats",
		Color: colorGreen,
		Description: fmt.Sprintf("<@%s>\nWins: %d | Battle Royales: %d | Marathons: %d",
			record.UserID, record.Wins, len(record.BRPlacements), record.MarathonWins),
	}
	if len(record.Events) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Events",
			Value: "• " + strings.Join(record.Events, "\n• "),
		})
	}
	if len(record.BRPlacements) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Placements",
			Value: strings.Join(record.BRPlacements, ", "),
		})
	}
	return embed
}

// searchPages renders search results as embed pages, newest first.
func searchPages(query string, results []leaderboard.SearchResult) []*discordgo.MessageEmbed {
	title := fmt.Sprintf("Search: %s", query)
	if len(results) == 0 {
		return []*discordgo.MessageEmbed{{
			Title:       title,
			Description: "No matching events found.",
			Color:       colorDarkTeal,
		}}
	}

	pageCount := leaderboard.PageCount(len(results))
	pages := make([]*discordgo.MessageEmbed, 0, pageCount)
	for page := 1; page <= pageCount; page++ {
		embed := &discordgo.MessageEmbed{
			Title: title,
			Color: colorDarkTeal,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Page %d/%d", page, pageCount),
			},
		}
		var lines []string
		for _, result := range leaderboard.PageSlice(results, page) {
			lines = append(lines, fmt.Sprintf("<@%s> — %s", result.UserID, result.EventText))
		}
		embed.Description = strings.Join(lines, "\n")
		pages = append(pages, embed)
	}
	return pages
}

// indexPages renders the game index, one page per category.
func indexPages(index *gameindex.Index) []*discordgo.MessageEmbed {
	categories := index.Categories()
	title := cases.Title(language.English)
	pages := make([]*discordgo.MessageEmbed, 0, len(categories))
	for i, category := range categories {
		var lines []string
		for _, game := range index.Games(category) {
			lines = append(lines, "• "+title.String(game))
		}
		pages = append(pages, &discordgo.MessageEmbed{
			Title:       "EM Game Index — " + category,
			Description: strings.Join(lines, "\n\n"),
			Color:       colorDarkTeal,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Page %d/%d", i+1, len(categories)),
			},
		})
	}
	return pages
}

// teamStatsEmbed renders a team's aggregate stats.
func teamStatsEmbed(entry teams.TeamStats) *discordgo.MessageEmbed {
	placements := "none"
	if len(entry.Placements) > 0 {
		placements = strings.Join(entry.Placements, ", ")
	}
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s", teamEmojis[entry.Team.Name], entry.Team.Name),
		Color: colorGold,
		Description: fmt.Sprintf("Members: %d/%d\nTotal wins: %d\nPlacements: %s\nPoints: %d",
			entry.MemberCount, teams.MaxTeamSize, entry.TotalWins, placements, entry.Points),
	}
}

// teamLeaderboardEmbed renders all teams ordered by points.
func teamLeaderboardEmbed(board []teams.TeamStats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Team Leaderboard",
		Color: colorGold,
	}
	for rank, entry := range board {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("#%d %s %s", rank+1, teamEmojis[entry.Team.Name], entry.Team.Name),
			Value: fmt.Sprintf("Points: %d | Wins: %d | Members: %d",
				entry.Points, entry.TotalWins, entry.MemberCount),
			Inline: false,
		})
	}
	return embed
}
