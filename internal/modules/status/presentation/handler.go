package presentation

import (
	"github.com/bwmarrin/discordgo"
	"github.com/tathaha/aiode/internal/bot"
	"github.com/tathaha/aiode/internal/modules/status/application"
)

const colorStatus = 0x3498DB

// StatusHandler handles the /status command.
type StatusHandler struct {
	interactor *application.StatusInteractor
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(interactor *application.StatusInteractor) *StatusHandler {
	return &StatusHandler{
		interactor: interactor,
	}
}

// Handle processes the status command and sends the response.
func (h *StatusHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guilds := 0
	if s.State != nil {
		guilds = len(s.State.Guilds)
	}

	report := h.interactor.Execute(s.HeartbeatLatency(), guilds)

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title: "Status",
					Color: colorStatus,
					Fields: []*discordgo.MessageEmbedField{
						{Name: "Version", Value: report.Version, Inline: true},
						{Name: "Uptime", Value: report.FormatUptime(), Inline: true},
						{Name: "Latency", Value: report.FormatLatency(), Inline: true},
					},
				},
			},
		},
	})
}
