package discord

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/establishmentmg/minigames-bot/internal/leaderboard"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.handlePageTurn(s, i)
	}
}

func (b *Bot) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	startTime := time.Now()
	defer func() {
		b.metrics.IncCommandsHandled()
		b.metrics.ObserveCommandDuration(time.Since(startTime).Seconds())
	}()

	log.Debug("Handling command", "command", name)
	var err error
	switch name {
	case "ping":
		err = b.respondText(s, i, "Pong!")
	case "list":
		err = b.respondText(s, i, helpText)
	case "stats":
		err = b.handleStats(s, i)
	case "register":
		err = b.handleRegister(s, i)
	case "edit":
		err = b.handleEdit(s, i)
	case "removelast":
		err = b.handleRemoveLast(s, i)
	case "remove":
		err = b.handleRemove(s, i)
	case "clearall":
		err = b.handleClearAll(s, i)
	case "addmarathon":
		err = b.handleAddMarathon(s, i)
	case "index":
		err = b.handleIndex(s, i)
	case "game":
		err = b.handleGame(s, i)
	case "search":
		err = b.handleSearch(s, i)
	case "tlist":
		err = b.respondText(s, i, teamHelpText)
	case "registerteam":
		err = b.handleRegisterTeam(s, i)
	case "leaveteam":
		err = b.handleLeaveTeam(s, i)
	case "team":
		err = b.handleTeam(s, i)
	case "teamstats":
		err = b.handleTeamStats(s, i)
	case "teamleaderboard":
		err = b.handleTeamLeaderboard(s, i)
	default:
		log.Warn("Unknown command", "command", name)
		return
	}

	if err != nil {
		b.metrics.IncCommandErrors()
		log.Error("Command failed", "command", name, "error", err)
		if rerr := b.respondText(s, i, userMessage(err)); rerr != nil {
			log.Error("Failed to send error reply", "command", name, "error", rerr)
		}
	}
}

func (b *Bot) handlePageTurn(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed, components, ok := b.paginator.turn(i.MessageComponentData().CustomID)
	if !ok {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "This page view has expired. Run the command again.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			log.Error("Failed to respond to expired page turn", "error", err)
		}
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Error("Failed to update paginated message", "error", err)
	}
}

func (b *Bot) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	if userID := userOption(s, options, "user"); userID != "" {
		record, err := b.stats.Get(userID)
		if err != nil {
			return err
		}
		return b.respondEmbeds(s, i, userStatsEmbed(record), nil)
	}

	all, err := b.stats.GetAll()
	if err != nil {
		return err
	}
	first, components := b.paginator.start(leaderboardPages(leaderboard.Rank(all)))
	return b.respondEmbeds(s, i, first, components)
}

func (b *Bot) handleRegister(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "user")
	if userID == "" {
		return events.ErrMissingArgument
	}

	isBattleRoyale, err := ParseBoolFlag(stringOption(options, "battle_royale"))
	if err != nil {
		return err
	}

	record, err := b.registrar.Register(
		userID,
		stringOption(options, "event_name"),
		isBattleRoyale,
		stringOption(options, "placement"),
		stringOption(options, "date"),
	)
	if err != nil {
		return err
	}
	b.metrics.IncEventsRegistered()
	return b.respondText(s, i, fmt.Sprintf("Registered **%s** for <@%s>. Wins: %d",
		record.Events[len(record.Events)-1], userID, record.Wins))
}

func (b *Bot) handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "user")
	if userID == "" {
		return events.ErrMissingArgument
	}

	_, err := b.registrar.Edit(userID, stringOption(options, "old_event"), stringOption(options, "new_event"))
	if err != nil {
		return err
	}
	return b.respondText(s, i, fmt.Sprintf("Updated event for <@%s>.", userID))
}

func (b *Bot) handleRemoveLast(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "user")
	if userID == "" {
		return events.ErrMissingArgument
	}

	record, err := b.registrar.RemoveLast(userID)
	if err != nil {
		return err
	}
	return b.respondText(s, i, fmt.Sprintf("Removed the most recent event for <@%s>. Wins: %d", userID, record.Wins))
}

func (b *Bot) handleRemove(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "user")
	if userID == "" {
		return events.ErrMissingArgument
	}

	record, err := b.registrar.RemoveSpecific(userID, stringOption(options, "event_name"), stringOption(options, "date"))
	if err != nil {
		return err
	}
	return b.respondText(s, i, fmt.Sprintf("Removed event for <@%s>. Wins: %d", userID, record.Wins))
}

func (b *Bot) handleClearAll(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "user")
	if userID == "" {
		return events.ErrMissingArgument
	}

	if err := b.stats.ClearUser(userID); err != nil {
		return err
	}
	return b.respondText(s, i, fmt.Sprintf("All stats cleared for <@%s>.", userID))
}

func (b *Bot) handleAddMarathon(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "user")
	if userID == "" {
		return events.ErrMissingArgument
	}

	record, err := b.registrar.AddMarathonWin(userID)
	if err != nil {
		return err
	}
	return b.respondText(s, i, fmt.Sprintf("Added a marathon win for <@%s>! Total: %d", userID, record.MarathonWins))
}

func (b *Bot) handleIndex(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	first, components := b.paginator.start(indexPages(b.index))
	return b.respondEmbeds(s, i, first, components)
}

func (b *Bot) handleGame(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	name := stringOption(options, "game_name")
	entry, ok := b.index.Lookup(name)
	if !ok {
		return b.respondText(s, i, fmt.Sprintf("No game mode named **%s**. Try /index.", name))
	}
	return b.respondEmbeds(s, i, &discordgo.MessageEmbed{
		Description: entry.Description,
		Color:       colorDarkTeal,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Category: " + entry.Category},
	}, nil)
}

func (b *Bot) handleSearch(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	query := stringOption(options, "game_name")

	all, err := b.stats.GetAll()
	if err != nil {
		return err
	}
	results := leaderboard.Search(all, query, time.Now())
	first, components := b.paginator.start(searchPages(query, results))
	return b.respondEmbeds(s, i, first, components)
}

func (b *Bot) handleRegisterTeam(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	team, err := b.teams.Join(invokingUserID(i), stringOption(options, "team_name"))
	if err != nil {
		return err
	}
	b.metrics.IncTeamJoins()
	return b.respondText(s, i, fmt.Sprintf("Registered to team %s %s!", teamEmojis[team.Name], team.Name))
}

func (b *Bot) handleLeaveTeam(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := b.teams.Leave(invokingUserID(i)); err != nil {
		return err
	}
	return b.respondText(s, i, "You have left your team.")
}

func (b *Bot) handleTeam(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)
	userID := userOption(s, options, "member")
	if userID == "" {
		userID = invokingUserID(i)
	}

	team, ok, err := b.teams.MemberTeam(userID)
	if err != nil {
		return err
	}
	if !ok {
		return b.respondText(s, i, fmt.Sprintf("<@%s> is not registered to any team.", userID))
	}
	return b.respondText(s, i, fmt.Sprintf("<@%s> is on team %s %s", userID, teamEmojis[team.Name], team.Name))
}

func (b *Bot) handleTeamStats(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := commandOptions(i)

	var team teams.Team
	if name := stringOption(options, "team_name"); name != "" {
		board, err := b.teams.Teams()
		if err != nil {
			return err
		}
		found := false
		for _, candidate := range board {
			if strings.EqualFold(candidate.Name, name) {
				team = candidate
				found = true
				break
			}
		}
		if !found {
			return teams.ErrInvalidTeam
		}
	} else {
		current, ok, err := b.teams.MemberTeam(invokingUserID(i))
		if err != nil {
			return err
		}
		if !ok {
			return teams.ErrNotMember
		}
		team = current
	}

	entry, err := b.teams.TeamStats(team.ID)
	if err != nil {
		return err
	}
	return b.respondEmbeds(s, i, teamStatsEmbed(entry), nil)
}

func (b *Bot) handleTeamLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	board, err := b.teams.Leaderboard()
	if err != nil {
		return err
	}
	return b.respondEmbeds(s, i, teamLeaderboardEmbed(board), nil)
}

func (b *Bot) respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func (b *Bot) respondEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// invokingUserID resolves the command author in both guild and DM contexts.
func invokingUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// userMessage maps a domain error to the reply shown to the user. Unknown
// errors get a generic failure message; the cause is already logged.
func userMessage(err error) string {
	switch {
	case errors.Is(err, events.ErrMissingArgument):
		return "Missing a required field for that command."
	case errors.Is(err, events.ErrNotFound):
		return "No matching event found."
	case errors.Is(err, ErrInvalidArgument):
		return "I didn't understand one of the arguments. Use yes/no for flags."
	case errors.Is(err, stats.ErrNoPriorData):
		return "That user has no recorded stats."
	case errors.Is(err, teams.ErrInvalidTeam):
		return "Invalid team name. Available teams: Chaos, Revel, Hearth, Honor."
	case errors.Is(err, teams.ErrNoEvents):
		return "You need at least one registered event before joining a team."
	case errors.Is(err, teams.ErrAlreadyMember):
		return "You are already on a team. Leave it first with /leaveteam."
	case errors.Is(err, teams.ErrNotMember):
		return "You are not on a team."
	case errors.Is(err, teams.ErrTeamFull):
		return "That team is full."
	default:
		return "Something went wrong. Please try again."
	}
}
