package music

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/tathaha/aiode/internal/bot"
	"github.com/tathaha/aiode/internal/modules/music/application/usecases"
	"github.com/tathaha/aiode/internal/modules/music/infrastructure"
	"github.com/tathaha/aiode/internal/modules/music/presentation"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var (
	_ bot.Module             = (*Module)(nil)
	_ bot.ConfigurableModule = (*Module)(nil)
)

// Module provides music search, disambiguation and playback commands.
type Module struct {
	config   *Config
	handlers *presentation.Handlers

	lavalinkAdapter *infrastructure.LavalinkAdapter
}

// Name returns the module name.
func (m *Module) Name() string {
	return "music"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"play":       m.handlers.HandlePlay,
		"connect":    m.handlers.HandleConnect,
		"pause":      m.handlers.HandlePause,
		"stop":       m.handlers.HandleStop,
		"save":       m.handlers.HandleSave,
		"lists":      m.handlers.HandleLists,
		"deletelist": m.handlers.HandleDeleteList,
	}
}

// EventHandlers returns the event handlers for this module. Voice events are
// forwarded to Lavalink; component interactions carrying the module's custom
// ID prefix are routed to the select handler.
func (m *Module) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(_ *discordgo.Session, event *discordgo.VoiceServerUpdate) {
			if m.lavalinkAdapter != nil {
				m.lavalinkAdapter.OnVoiceServerUpdate(event)
			}
		},
		func(_ *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			if m.lavalinkAdapter != nil {
				m.lavalinkAdapter.OnVoiceStateUpdate(event)
			}
		},
		func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			m.handleComponentInteraction(s, i)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *Module) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *Module) Init(deps bot.ModuleDependencies) error {
	lavalinkAdapter, err := infrastructure.NewLavalinkAdapter(
		deps.Session,
		infrastructure.LavalinkConfig{
			Address:  m.config.LavalinkAddress,
			Password: m.config.LavalinkPassword,
		},
	)
	if err != nil {
		return err
	}
	m.lavalinkAdapter = lavalinkAdapter

	authorizer, err := infrastructure.NewSpotifyAuthorizer(infrastructure.SpotifyConfig{
		ClientID:     m.config.SpotifyClientID,
		ClientSecret: m.config.SpotifyClientSecret,
		RedirectURL:  m.config.SpotifyRedirectURL,
	})
	if err != nil {
		return err
	}

	youtube, err := infrastructure.NewYouTubeClient(m.config.YouTubeAPIKey)
	if err != nil {
		return err
	}

	lists, err := infrastructure.NewListRepository(m.config.DatabasePath)
	if err != nil {
		return err
	}

	prompts, err := infrastructure.NewPromptStore()
	if err != nil {
		return err
	}

	registry := infrastructure.NewPlayerRegistry()
	voiceState := infrastructure.NewVoiceStateProvider(deps.Session)
	notifier := infrastructure.NewNotifier(deps.Session)

	gateway := usecases.NewAudioGatewayService(registry, lavalinkAdapter, lavalinkAdapter, notifier)
	lavalinkAdapter.SetTrackEndHandler(gateway.OnTrackEnd)

	playService := usecases.NewPlayService(
		authorizer,
		youtube,
		lists,
		voiceState,
		prompts,
		gateway,
	)

	listService := usecases.NewListService(lists, registry)

	m.handlers = presentation.NewHandlers(playService, listService, authorizer, gateway)

	slog.Info("music module initialized")

	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	if m.lavalinkAdapter != nil {
		m.lavalinkAdapter.Link().Close()
	}
	return nil
}

func (m *Module) handleComponentInteraction(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	if !strings.HasPrefix(i.MessageComponentData().CustomID, presentation.SelectCustomIDPrefix) {
		return
	}

	responder := bot.NewDiscordResponder(s, i.Interaction)
	if err := m.handlers.HandleSelect(s, i, responder); err != nil {
		slog.Error("failed to handle selection", "error", err)
	}
}
