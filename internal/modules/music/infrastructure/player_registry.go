package infrastructure

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// PlayerRegistry is an in-memory registry of per-guild players.
type PlayerRegistry struct {
	mu      sync.RWMutex
	players map[snowflake.ID]*domain.Player
}

// NewPlayerRegistry creates a new PlayerRegistry.
func NewPlayerRegistry() *PlayerRegistry {
	return &PlayerRegistry{
		players: make(map[snowflake.ID]*domain.Player),
	}
}

// Player returns the Player for the guild, creating it if absent.
func (r *PlayerRegistry) Player(guildID snowflake.ID) *domain.Player {
	r.mu.RLock()
	player, ok := r.players[guildID]
	r.mu.RUnlock()
	if ok {
		return player
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if player, ok := r.players[guildID]; ok {
		return player
	}
	player = domain.NewPlayer(guildID)
	r.players[guildID] = player
	return player
}

// ExistingPlayer returns the Player for the guild, or nil.
func (r *PlayerRegistry) ExistingPlayer(guildID snowflake.ID) *domain.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players[guildID]
}

// Remove drops the guild's player, typically when the bot leaves the guild.
func (r *PlayerRegistry) Remove(guildID snowflake.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, guildID)
}

// Count returns the number of registered players (for testing/monitoring).
func (r *PlayerRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

// Ensure PlayerRegistry implements PlayerRegistry.
var _ domain.PlayerRegistry = (*PlayerRegistry)(nil)
