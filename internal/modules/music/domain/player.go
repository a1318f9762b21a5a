package domain

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// Player is the per-guild playback state: the audio queue plus the paused
// flag and the channels playback is bound to. All access goes through
// methods holding the player's own mutex, so two concurrent resolutions for
// the same guild cannot interleave their queue replacement.
type Player struct {
	mu sync.Mutex

	guildID               snowflake.ID
	voiceChannelID        snowflake.ID
	notificationChannelID snowflake.ID
	queue                 Queue
	paused                bool
	playing               bool
}

// NewPlayer creates a Player for the given guild.
func NewPlayer(guildID snowflake.ID) *Player {
	return &Player{
		guildID: guildID,
		queue:   NewQueue(),
	}
}

// GuildID returns the guild this player belongs to.
func (p *Player) GuildID() snowflake.ID {
	// Immutable after construction, no lock needed.
	return p.guildID
}

// ReplaceQueue atomically swaps the queue contents for the batch and records
// the channels the new playback is bound to.
func (p *Player) ReplaceQueue(batch Batch, voiceChannelID, notificationChannelID snowflake.ID) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.queue.Replace(batch)
	p.voiceChannelID = voiceChannelID
	p.notificationChannelID = notificationChannelID
	p.paused = false
}

// Current returns the playable at the queue cursor, or nil.
func (p *Player) Current() *Playable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Current()
}

// Advance moves the cursor to the next playable and returns it, or nil when
// the queue has ended.
func (p *Player) Advance() *Playable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Advance()
}

// QueueSnapshot returns a copy of the queue contents in order.
func (p *Player) QueueSnapshot() []Playable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.List()
}

// ClearQueue discards the queue contents and resets the playback flags.
func (p *Player) ClearQueue() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.queue.Clear()
	p.paused = false
	p.playing = false
}

// IsQueueEmpty reports whether the queue holds no playables.
func (p *Player) IsQueueEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.IsEmpty()
}

// IsPaused reports whether playback is paused.
func (p *Player) IsPaused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// SetPaused sets the paused state.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = paused
}

// IsPlaying reports whether playback is active.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// SetPlaying sets whether playback is active.
func (p *Player) SetPlaying(playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = playing
}

// VoiceChannelID returns the voice channel playback is bound to.
func (p *Player) VoiceChannelID() snowflake.ID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.voiceChannelID
}

// SetVoiceChannelID updates the voice channel playback is bound to.
func (p *Player) SetVoiceChannelID(id snowflake.ID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.voiceChannelID = id
}

// NotificationChannelID returns the text channel playback messages go to.
func (p *Player) NotificationChannelID() snowflake.ID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notificationChannelID
}

// PlayerRegistry hands out the per-guild Player resource.
type PlayerRegistry interface {
	// Player returns the Player for the guild, creating it if absent.
	Player(guildID snowflake.ID) *Player

	// ExistingPlayer returns the Player for the guild, or nil.
	ExistingPlayer(guildID snowflake.ID) *Player
}
