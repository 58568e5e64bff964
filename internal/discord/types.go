package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/establishmentmg/minigames-bot/internal/events"
	"github.com/establishmentmg/minigames-bot/internal/gameindex"
	"github.com/establishmentmg/minigames-bot/internal/metrics"
	"github.com/establishmentmg/minigames-bot/internal/stats"
	"github.com/establishmentmg/minigames-bot/internal/teams"
)

// Bot wires the Discord gateway to the domain stores. All command handling
// goes through it; the domain packages never see discordgo types.
type Bot struct {
	session   *discordgo.Session
	guildID   string
	stats     stats.Store
	registrar *events.Registrar
	teams     teams.Store
	index     *gameindex.Index
	metrics   metrics.Metrics
	paginator *paginator
}

// teamEmojis maps preset team names to their server emoji.
var teamEmojis = map[string]string{
	"Chaos":  "<:chaos:1404549946694307924>",
	"Revel":  "<:revel:1404549965421871265>",
	"Hearth": "<:hearth:1404549986850443334>",
	"Honor":  "<:honor:1404550005573943346>",
}
