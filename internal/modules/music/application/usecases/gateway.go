package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// AudioGateway is the playback surface the resolution pipeline writes to.
type AudioGateway interface {
	// ReplaceAndPlay atomically replaces the guild's queue contents with the
	// batch and starts playback in the voice channel. It either fully
	// replaces the queue and playback starts, or it fails with
	// domain.ErrPlaybackStart; the old queue is never left half-replaced.
	ReplaceAndPlay(ctx context.Context, guildID, voiceChannelID, notificationChannelID snowflake.ID, batch domain.Batch) error

	// PlayCurrent (re)starts the playable at the queue cursor in the voice
	// channel.
	PlayCurrent(ctx context.Context, guildID, voiceChannelID snowflake.ID) error

	// IsPaused reports whether the guild's playback is paused.
	IsPaused(guildID snowflake.ID) bool

	// Unpause resumes paused playback in place.
	Unpause(ctx context.Context, guildID snowflake.ID) error

	// IsQueueEmpty reports whether the guild's queue holds no playables.
	IsQueueEmpty(guildID snowflake.ID) bool

	// Pause pauses active playback in place.
	Pause(ctx context.Context, guildID snowflake.ID) error

	// Stop stops playback, discards the queue and leaves the voice channel.
	Stop(ctx context.Context, guildID snowflake.ID) error
}

// AudioGatewayService implements AudioGateway over the per-guild player
// registry and the voice transport. Every playback operation runs under a
// per-guild lock, so a queue replacement and the playback start it triggers
// form one critical section: two concurrent resolutions for the same guild
// cannot interleave a replace with the other's start.
type AudioGatewayService struct {
	registry domain.PlayerRegistry
	audio    ports.AudioPlayer
	voice    ports.VoiceConnection
	notifier ports.Notifier

	mu    sync.Mutex
	locks map[snowflake.ID]*sync.Mutex
}

// NewAudioGatewayService creates a new AudioGatewayService.
func NewAudioGatewayService(
	registry domain.PlayerRegistry,
	audio ports.AudioPlayer,
	voice ports.VoiceConnection,
	notifier ports.Notifier,
) *AudioGatewayService {
	return &AudioGatewayService{
		registry: registry,
		audio:    audio,
		voice:    voice,
		notifier: notifier,
		locks:    make(map[snowflake.ID]*sync.Mutex),
	}
}

func (g *AudioGatewayService) guildLock(guildID snowflake.ID) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	lock, ok := g.locks[guildID]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[guildID] = lock
	}
	return lock
}

// Compile-time interface check.
var _ AudioGateway = (*AudioGatewayService)(nil)

// ReplaceAndPlay joins the voice channel, swaps the queue for the fully
// constructed batch and starts the first playable. A join failure leaves the
// old queue intact.
func (g *AudioGatewayService) ReplaceAndPlay(
	ctx context.Context,
	guildID, voiceChannelID, notificationChannelID snowflake.ID,
	batch domain.Batch,
) error {
	if len(batch) == 0 {
		return domain.ErrNoResults
	}

	lock := g.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	if err := g.voice.JoinChannel(ctx, guildID, voiceChannelID); err != nil {
		return fmt.Errorf("%w: could not join voice channel: %v", domain.ErrPlaybackStart, err)
	}

	player := g.registry.Player(guildID)
	player.ReplaceQueue(batch, voiceChannelID, notificationChannelID)

	return g.startCurrent(ctx, player)
}

// PlayCurrent restarts the playable at the cursor, rebinding playback to the
// given voice channel.
func (g *AudioGatewayService) PlayCurrent(
	ctx context.Context,
	guildID, voiceChannelID snowflake.ID,
) error {
	lock := g.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	player := g.registry.ExistingPlayer(guildID)
	if player == nil || player.Current() == nil {
		return domain.ErrEmptyQueue
	}

	if err := g.voice.JoinChannel(ctx, guildID, voiceChannelID); err != nil {
		return fmt.Errorf("%w: could not join voice channel: %v", domain.ErrPlaybackStart, err)
	}
	player.SetVoiceChannelID(voiceChannelID)

	return g.startCurrent(ctx, player)
}

func (g *AudioGatewayService) startCurrent(ctx context.Context, player *domain.Player) error {
	current := player.Current()
	if current == nil {
		return domain.ErrEmptyQueue
	}

	if err := g.audio.Play(ctx, player.GuildID(), *current); err != nil {
		player.SetPlaying(false)
		return fmt.Errorf("%w: %v", domain.ErrPlaybackStart, err)
	}
	player.SetPlaying(true)
	player.SetPaused(false)

	if g.notifier != nil {
		if err := g.notifier.SendNowPlaying(player.NotificationChannelID(), *current); err != nil {
			slog.Warn("failed to send now playing notification",
				"guild", player.GuildID(), "error", err)
		}
	}

	return nil
}

// IsPaused reports whether the guild's playback is paused.
func (g *AudioGatewayService) IsPaused(guildID snowflake.ID) bool {
	player := g.registry.ExistingPlayer(guildID)
	return player != nil && player.IsPaused()
}

// Unpause resumes paused playback in place, without touching the queue.
func (g *AudioGatewayService) Unpause(ctx context.Context, guildID snowflake.ID) error {
	lock := g.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	player := g.registry.ExistingPlayer(guildID)
	if player == nil {
		return domain.ErrEmptyQueue
	}

	if err := g.audio.Resume(ctx, guildID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPlaybackStart, err)
	}
	player.SetPaused(false)

	return nil
}

// Pause pauses active playback in place, keeping the queue and cursor.
func (g *AudioGatewayService) Pause(ctx context.Context, guildID snowflake.ID) error {
	lock := g.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	player := g.registry.ExistingPlayer(guildID)
	if player == nil || !player.IsPlaying() || player.IsPaused() {
		return domain.ErrEmptyQueue
	}

	if err := g.audio.Pause(ctx, guildID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPlaybackStart, err)
	}
	player.SetPaused(true)

	return nil
}

// Stop stops playback, discards the guild's queue and disconnects from the
// voice channel.
func (g *AudioGatewayService) Stop(ctx context.Context, guildID snowflake.ID) error {
	lock := g.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	player := g.registry.ExistingPlayer(guildID)
	if player == nil || player.IsQueueEmpty() {
		return domain.ErrEmptyQueue
	}

	if err := g.audio.Stop(ctx, guildID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPlaybackStart, err)
	}
	player.ClearQueue()

	if err := g.voice.LeaveChannel(ctx, guildID); err != nil {
		slog.Warn("failed to leave voice channel", "guild", guildID, "error", err)
	}

	return nil
}

// IsQueueEmpty reports whether the guild's queue holds no playables.
func (g *AudioGatewayService) IsQueueEmpty(guildID snowflake.ID) bool {
	player := g.registry.ExistingPlayer(guildID)
	return player == nil || player.IsQueueEmpty()
}

// OnTrackEnd advances the guild's queue and starts the next playable. Wired
// to the audio transport's track-end event.
func (g *AudioGatewayService) OnTrackEnd(ctx context.Context, guildID snowflake.ID) {
	lock := g.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	player := g.registry.ExistingPlayer(guildID)
	if player == nil {
		return
	}

	next := player.Advance()
	if next == nil {
		player.SetPlaying(false)
		return
	}

	if err := g.audio.Play(ctx, guildID, *next); err != nil {
		slog.Error("failed to play next queued item",
			"guild", guildID, "title", next.Title, "error", err)
		player.SetPlaying(false)
		return
	}

	if g.notifier != nil {
		if err := g.notifier.SendNowPlaying(player.NotificationChannelID(), *next); err != nil {
			slog.Warn("failed to send now playing notification",
				"guild", guildID, "error", err)
		}
	}
}
