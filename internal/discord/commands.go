package discord

import "github.com/bwmarrin/discordgo"

func slashCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check if the bot is alive",
		},
		{
			Name:        "list",
			Description: "Show list of commands",
		},
		{
			Name:        "stats",
			Description: "Show stats for a user or the full leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to show stats for (optional)",
					Required:    false,
				},
			},
		},
		{
			Name:        "register",
			Description: "Register an event result for a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User the event belongs to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event_name",
					Description: "Name of the event",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Event date, e.g. 7/25 or 7/25/2025",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "battle_royale",
					Description: "Whether this was a battle royale (yes/no)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "placement",
					Description: "Placement label for battle royales, e.g. 1st",
					Required:    false,
				},
			},
		},
		{
			Name:        "edit",
			Description: "Edit a previously registered event",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User the event belongs to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "old_event",
					Description: "Existing event text",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "new_event",
					Description: "Replacement event text",
					Required:    true,
				},
			},
		},
		{
			Name:        "removelast",
			Description: "Remove a user's most recent event",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to remove the event from",
					Required:    true,
				},
			},
		},
		{
			Name:        "remove",
			Description: "Remove a specific event by name and date",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to remove the event from",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event_name",
					Description: "Part of the event name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Part of the event date",
					Required:    true,
				},
			},
		},
		{
			Name:        "clearall",
			Description: "Clear all stats for a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to clear stats for",
					Required:    true,
				},
			},
		},
		{
			Name:        "addmarathon",
			Description: "Add a marathon win for a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to credit",
					Required:    true,
				},
			},
		},
		{
			Name:        "index",
			Description: "Show the game mode index",
		},
		{
			Name:        "game",
			Description: "Show the description of a game mode",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game_name",
					Description: "Game mode name",
					Required:    true,
				},
			},
		},
		{
			Name:        "search",
			Description: "Search registered events by game name",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "game_name",
					Description: "Game mode name to search for",
					Required:    true,
				},
			},
		},
		{
			Name:        "tlist",
			Description: "Show team commands list",
		},
		{
			Name:        "registerteam",
			Description: "Register to a team",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team_name",
					Description: "The name of the team you want to join",
					Required:    true,
				},
			},
		},
		{
			Name:        "leaveteam",
			Description: "Leave your current team",
		},
		{
			Name:        "team",
			Description: "Check a member's team",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "The member whose team you want to check",
					Required:    false,
				},
			},
		},
		{
			Name:        "teamstats",
			Description: "Show aggregate stats for a team",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team_name",
					Description: "Team to show (defaults to your own)",
					Required:    false,
				},
			},
		},
		{
			Name:        "teamleaderboard",
			Description: "Show the team leaderboard",
		},
	}
}
