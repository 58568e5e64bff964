package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ErrInvalidArgument is returned for argument tokens the parser does not
// recognize.
var ErrInvalidArgument = errors.New("invalid argument")

// ParseBoolFlag parses a user-supplied boolean token. Only the listed
// spellings are accepted; anything else is an error rather than silently
// false.
func ParseBoolFlag(token string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "false", "no", "0", "n":
		return false, nil
	case "true", "yes", "1", "y":
		return true, nil
	default:
		return false, fmt.Errorf("%w: unrecognized boolean flag %q", ErrInvalidArgument, token)
	}
}

// commandOptions flattens interaction options into a name-keyed map.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, option := range i.ApplicationCommandData().Options {
		options[option.Name] = option
	}
	return options
}

func stringOption(options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if option, ok := options[name]; ok {
		return option.StringValue()
	}
	return ""
}

func userOption(s *discordgo.Session, options map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if option, ok := options[name]; ok {
		if user := option.UserValue(s); user != nil {
			return user.ID
		}
	}
	return ""
}
