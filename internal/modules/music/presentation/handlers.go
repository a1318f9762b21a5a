package presentation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/bot"
	"github.com/tathaha/aiode/internal/modules/music/application/usecases"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// Embed colors.
const (
	colorSuccess = 0x08c404
	colorNotice  = 0xF1C40F
	colorError   = 0xE74C3C
)

// selectLabelMaxLen is the Discord limit for select menu option labels.
const selectLabelMaxLen = 100

// playService is the slice of the play orchestrator the handlers need.
type playService interface {
	Play(ctx context.Context, promptID string, req domain.PlayRequest) (*usecases.PlayOutput, error)
	Select(ctx context.Context, input usecases.SelectInput) (*usecases.PlayOutput, error)
}

// listService is the slice of the list manager the handlers need.
type listService interface {
	SaveQueue(ctx context.Context, guildID snowflake.ID, name string) (*domain.LocalList, error)
	Delete(ctx context.Context, guildID snowflake.ID, name string) error
	Names(ctx context.Context, guildID snowflake.ID) ([]string, error)
}

// authService is the slice of the credential authorizer the handlers need.
type authService interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, userID snowflake.ID, code string) error
}

// playbackService is the slice of the audio gateway the handlers need.
type playbackService interface {
	Pause(ctx context.Context, guildID snowflake.ID) error
	Stop(ctx context.Context, guildID snowflake.ID) error
}

// Handlers holds the command handlers for the music module.
type Handlers struct {
	play     playService
	lists    listService
	auth     authService
	playback playbackService
}

// NewHandlers creates new Handlers.
func NewHandlers(play playService, lists listService, auth authService, playback playbackService) *Handlers {
	return &Handlers{play: play, lists: lists, auth: auth, playback: playback}
}

// HandlePlay handles the /play command.
func (h *Handlers) HandlePlay(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	notificationChannelID, err := snowflake.Parse(i.ChannelID)
	if err != nil {
		return respondError(r, "Invalid channel")
	}

	req := domain.PlayRequest{
		GuildID:               guildID,
		UserID:                userID,
		NotificationChannelID: notificationChannelID,
	}

	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "query":
			req.Body = strings.TrimSpace(opt.StringValue())
		case "list":
			req.Flags.List = opt.BoolValue()
		case "preview":
			req.Flags.Preview = opt.BoolValue()
		case "spotify":
			req.Flags.Spotify = opt.BoolValue()
		case "youtube":
			req.Flags.Youtube = opt.BoolValue()
		case "own":
			req.Flags.Own = opt.BoolValue()
		case "local":
			req.Flags.Local = opt.BoolValue()
		case "limit":
			req.Flags.Limit = int(opt.IntValue())
		}
	}

	output, err := h.play.Play(context.Background(), i.Interaction.ID, req)
	if err != nil {
		return respondError(r, errorMessage(err))
	}

	return h.respondOutput(r, output)
}

// HandleSelect handles the disambiguation select menu component.
func (h *Handlers) HandleSelect(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	notificationChannelID, err := snowflake.Parse(i.ChannelID)
	if err != nil {
		return respondError(r, "Invalid channel")
	}

	data := i.MessageComponentData()
	promptID := strings.TrimPrefix(data.CustomID, SelectCustomIDPrefix)
	if len(data.Values) != 1 {
		return respondError(r, "Invalid selection")
	}

	var index int
	if _, err := fmt.Sscanf(data.Values[0], "%d", &index); err != nil {
		return respondError(r, "Invalid selection")
	}

	output, err := h.play.Select(context.Background(), usecases.SelectInput{
		GuildID:               guildID,
		UserID:                userID,
		NotificationChannelID: notificationChannelID,
		PromptID:              promptID,
		Index:                 index,
	})
	if err != nil {
		return respondError(r, errorMessage(err))
	}

	return h.respondOutput(r, output)
}

// HandleConnect handles the /connect command. Without a code it hands out
// the authorization URL; with one it completes the exchange.
func (h *Handlers) HandleConnect(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	code := strings.TrimSpace(commandOption(i, "code"))
	if code == "" {
		return respondEphemeral(r, fmt.Sprintf(
			"Authorize via %s and run /connect again with the code from the redirect.",
			h.auth.AuthURL(userID.String()),
		))
	}

	if err := h.auth.Exchange(context.Background(), userID, code); err != nil {
		return respondError(r, errorMessage(err))
	}

	return respondEphemeral(r, "Spotify account connected. Own-library searches are now available.")
}

// HandlePause handles the /pause command.
func (h *Handlers) HandlePause(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.playback.Pause(context.Background(), guildID); err != nil {
		if errors.Is(err, domain.ErrEmptyQueue) {
			return respondNotice(r, "Nothing is playing.")
		}
		return respondError(r, errorMessage(err))
	}

	return respondNotice(r, "Playback paused. Use /play to resume.")
}

// HandleStop handles the /stop command.
func (h *Handlers) HandleStop(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.playback.Stop(context.Background(), guildID); err != nil {
		if errors.Is(err, domain.ErrEmptyQueue) {
			return respondNotice(r, "Nothing is playing.")
		}
		return respondError(r, errorMessage(err))
	}

	return respondNotice(r, "Playback stopped and the queue cleared.")
}

// HandleSave handles the /save command.
func (h *Handlers) HandleSave(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	name := commandOption(i, "name")
	list, err := h.lists.SaveQueue(context.Background(), guildID, name)
	if err != nil {
		return respondError(r, saveErrorMessage(err))
	}

	return respondNoticeColor(r,
		fmt.Sprintf("Saved the queue as **%s** (%d items).", list.Name, len(list.Items)),
		colorSuccess,
	)
}

// HandleLists handles the /lists command.
func (h *Handlers) HandleLists(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	names, err := h.lists.Names(context.Background(), guildID)
	if err != nil {
		return respondError(r, errorMessage(err))
	}

	if len(names) == 0 {
		return respondNotice(r, "No saved lists yet. Use /save to create one.")
	}

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Saved lists",
					Description: sb.String(),
					Color:       colorSuccess,
				},
			},
		},
	})
}

// HandleDeleteList handles the /deletelist command.
func (h *Handlers) HandleDeleteList(
	_ *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	name := commandOption(i, "name")
	if err := h.lists.Delete(context.Background(), guildID, name); err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return respondError(r, fmt.Sprintf("No saved list named **%s**.", strings.TrimSpace(name)))
		}
		return respondError(r, errorMessage(err))
	}

	return respondNoticeColor(r,
		fmt.Sprintf("Deleted **%s**.", strings.TrimSpace(name)),
		colorSuccess,
	)
}

// commandOption returns the named string option value, or empty.
func commandOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// saveErrorMessage maps save failures to user-facing messages.
func saveErrorMessage(err error) string {
	if errors.Is(err, domain.ErrEmptyQueue) {
		return "The queue is empty, there is nothing to save."
	}
	return errorMessage(err)
}

func (h *Handlers) respondOutput(r bot.Responder, output *usecases.PlayOutput) error {
	switch output.Kind {
	case usecases.PlayQueued:
		return respondQueued(r, output)
	case usecases.PlayResumed:
		return respondResumed(r)
	case usecases.PlayNotice:
		return respondNotice(r, output.Notice)
	case usecases.PlayPrompted:
		return respondPrompt(r, output.Prompt)
	default:
		return respondError(r, "Unexpected result")
	}
}

// errorMessage maps pipeline errors to user-facing messages.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrPromptExpired):
		return "This choice has expired. Run the play command again."
	case errors.Is(err, domain.ErrNoVoiceChannel):
		return "Join a voice channel first."
	case errors.Is(err, domain.ErrAuthorization):
		return "You need to connect your Spotify account for that."
	case errors.Is(err, domain.ErrEmptyQueue):
		return "Nothing to resume. Specify a track you want to play."
	default:
		return capitalize(trimErrorPrefix(err.Error()))
	}
}

// trimErrorPrefix drops the sentinel prefix from wrapped errors so users see
// only the descriptive part.
func trimErrorPrefix(message string) string {
	if idx := strings.Index(message, ": "); idx >= 0 {
		return message[idx+2:]
	}
	return message
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Response helpers.

func respondError(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Error",
					Description: message,
					Color:       colorError,
				},
			},
		},
	})
}

func respondResumed(r bot.Responder) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: "Resumed playback.",
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondEphemeral(r bot.Responder, content string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondNotice(r bot.Responder, notice string) error {
	return respondNoticeColor(r, notice, colorNotice)
}

func respondNoticeColor(r bot.Responder, notice string, color int) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: notice,
					Color:       color,
				},
			},
		},
	})
}

func respondQueued(r bot.Responder, output *usecases.PlayOutput) error {
	var description string
	switch {
	case output.ListName != "":
		description = fmt.Sprintf("Playing **%s** (%d items).", output.ListName, len(output.Queued))
	case len(output.Queued) == 1:
		playable := output.Queued[0]
		description = fmt.Sprintf("Playing **%s** by %s.", playable.Title, playable.Creator)
	default:
		description = fmt.Sprintf("Playing %d items.", len(output.Queued))
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: description,
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondPrompt(r bot.Responder, prompt *domain.Prompt) error {
	options := make([]discordgo.SelectMenuOption, len(prompt.Candidates))
	for i, candidate := range prompt.Candidates {
		options[i] = discordgo.SelectMenuOption{
			Label: selectLabel(candidate),
			Value: fmt.Sprintf("%d", i),
		}
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Multiple results found, pick one:",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    SelectCustomIDPrefix + prompt.ID,
							Placeholder: "Pick a result",
							Options:     options,
						},
					},
				},
			},
		},
	})
}

// selectLabel renders a candidate as a single select menu label.
func selectLabel(candidate domain.Match) string {
	label := candidate.Label()
	if sublabel := candidate.Sublabel(); sublabel != "" {
		label += " (" + sublabel + ")"
	}
	if runes := []rune(label); len(runes) > selectLabelMaxLen {
		label = string(runes[:selectLabelMaxLen-1]) + "…"
	}
	return label
}
