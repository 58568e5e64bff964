package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/metrics"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

// New creates the bot and its gateway session. The session is not opened
// until Open is called.
func New(token, guildID string, statsStore stats.Store, registrar *events.Registrar, teamStore teams.Store, index *gameindex.Index, metricsSvc metrics.Metrics) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		session:   session,
		guildID:   guildID,
		stats:     statsStore,
		registrar: registrar,
		teams:     teamStore,
		index:     index,
		metrics:   metricsSvc,
		paginator: newPaginator(),
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onInteractionCreate)
	return bot, nil
}

// Open connects to the gateway. Slash commands are registered from onReady
// once the session identifies.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	return nil
}

// Close shuts the gateway connection down.
func (b *Bot) Close() error {
	b.paginator.stop()
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Info("Discord bot logged in", "username", event.User.Username, "id", event.User.ID)

	if err := b.registerSlashCommands(s); err != nil {
		log.Error("Failed to register slash commands", "error", err)
	}
}

func (b *Bot) registerSlashCommands(s *discordgo.Session) error {
	for _, command := range slashCommands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, b.guildID, command)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", command.Name, err)
		}
	}
	log.Info("Registered slash commands", "count", len(slashCommands()))
	return nil
}
