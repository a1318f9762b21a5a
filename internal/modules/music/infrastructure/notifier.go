package infrastructure

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// Embed colors.
const (
	colorRed     = 0xE74C3C
	colorSpotify = 0x1DB954
	colorYouTube = 0xFF0000
)

// Notifier sends playback notifications to Discord channels.
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a new Notifier.
func NewNotifier(session *discordgo.Session) *Notifier {
	return &Notifier{
		session: session,
	}
}

// SendNowPlaying sends a "Now Playing" embed to the channel.
func (n *Notifier) SendNowPlaying(channelID snowflake.ID, playable domain.Playable) error {
	title := playable.Title
	if playable.Preview {
		title += " (preview)"
	}

	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name: "Now Playing",
		},
		Title: title,
		URL:   playable.URI,
		Color: sourceColor(playable.Source),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "By",
				Value:  playable.Creator,
				Inline: true,
			},
		},
	}

	if playable.Duration > 0 && !playable.Preview {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Duration",
			Value:  formatDuration(playable.Duration),
			Inline: true,
		})
	}

	_, err := n.session.ChannelMessageSendEmbed(channelID.String(), embed)
	return err
}

// SendError sends a user-visible error message.
func (n *Notifier) SendError(channelID snowflake.ID, message string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorRed,
	}

	_, err := n.session.ChannelMessageSendEmbed(channelID.String(), embed)
	return err
}

func sourceColor(source domain.Source) int {
	switch source {
	case domain.SourceSpotify:
		return colorSpotify
	case domain.SourceYouTube:
		return colorYouTube
	default:
		return colorRed
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	if minutes >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", minutes/60, minutes%60, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)
