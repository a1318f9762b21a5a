package bot

import "github.com/bwmarrin/discordgo"

// Responder is the reply surface handed to command handlers. Handlers never
// touch the session for replies directly, which keeps them testable without
// a live Discord connection.
type Responder interface {
	// Respond sends a response to the interaction being handled.
	Respond(response *discordgo.InteractionResponse) error
}

// DiscordResponder replies through a live session, bound to one interaction.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

// NewDiscordResponder creates a Responder bound to the given interaction.
func NewDiscordResponder(s *discordgo.Session, i *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// Respond sends the response via the Discord API.
func (r *DiscordResponder) Respond(response *discordgo.InteractionResponse) error {
	return r.session.InteractionRespond(r.interaction, response)
}

// MockResponder is a test double for Responder. It records every response it
// receives; LastResponse is the most recent one.
type MockResponder struct {
	Responses    []*discordgo.InteractionResponse
	LastResponse *discordgo.InteractionResponse
	Err          error
}

// Respond records the response.
func (m *MockResponder) Respond(response *discordgo.InteractionResponse) error {
	m.Responses = append(m.Responses, response)
	m.LastResponse = response
	return m.Err
}
