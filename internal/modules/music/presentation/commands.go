package presentation

import "github.com/bwmarrin/discordgo"

// SelectCustomIDPrefix prefixes the custom ID of disambiguation select menus.
// The full custom ID is the prefix followed by the prompt ID.
const SelectCustomIDPrefix = "play:select:"

// Commands returns all slash commands for the music module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "play",
			Description: "Play a track, video, playlist or saved list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "Search term or list name (omit to resume playback)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "list",
					Description: "Treat the query as a playlist or saved list name",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "preview",
					Description: "Play short previews instead of full tracks",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "spotify",
					Description: "Search Spotify explicitly",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "youtube",
					Description: "Search YouTube instead of Spotify",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "own",
					Description: "Search your saved Spotify library (requires spotify)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "local",
					Description: "Only consider saved lists (requires list)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "Number of YouTube results to choose from (requires youtube)",
					Required:    false,
					MinValue:    floatPtr(1),
					MaxValue:    10,
				},
			},
		},
		{
			Name:        "connect",
			Description: "Connect your Spotify account for own-library searches",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Authorization code from the Spotify redirect (omit to get the login link)",
					Required:    false,
				},
			},
		},
		{
			Name:        "pause",
			Description: "Pause the current playback",
		},
		{
			Name:        "stop",
			Description: "Stop playback, clear the queue and leave the voice channel",
		},
		{
			Name:        "save",
			Description: "Save the current queue as a named list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name for the saved list",
					Required:    true,
				},
			},
		},
		{
			Name:        "lists",
			Description: "Show the saved lists of this server",
		},
		{
			Name:        "deletelist",
			Description: "Delete a saved list",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name of the list to delete",
					Required:    true,
				},
			},
		},
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
