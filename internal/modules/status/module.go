package status

import (
	"github.com/bwmarrin/discordgo"
	"github.com/tathaha/aiode/internal/bot"
	"github.com/tathaha/aiode/internal/modules/status/application"
	"github.com/tathaha/aiode/internal/modules/status/presentation"
)

// Version is set by the main package before modules are loaded.
var Version = "dev"

func init() {
	bot.Register(&StatusModule{})
}

// StatusModule provides runtime diagnostics via /status.
type StatusModule struct {
	handler *presentation.StatusHandler
}

// Name returns the module name.
func (m *StatusModule) Name() string {
	return "status"
}

// Commands returns the slash commands for this module.
func (m *StatusModule) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "status",
			Description: "Shows bot version, uptime, and gateway latency",
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *StatusModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"status": m.handler.Handle,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *StatusModule) EventHandlers() []bot.EventHandler {
	return nil
}

// Init initializes the module.
func (m *StatusModule) Init(deps bot.ModuleDependencies) error {
	m.handler = presentation.NewStatusHandler(application.NewStatusInteractor(Version))
	return nil
}

// Shutdown cleans up module resources.
func (m *StatusModule) Shutdown() error {
	return nil
}
