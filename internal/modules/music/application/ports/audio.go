package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// AudioPlayer defines the voice transport's playback operations.
type AudioPlayer interface {
	// Play starts playback of the given playable in the guild.
	Play(ctx context.Context, guildID snowflake.ID, playable domain.Playable) error

	// Stop stops the current playback.
	Stop(ctx context.Context, guildID snowflake.ID) error

	// Pause pauses the current playback.
	Pause(ctx context.Context, guildID snowflake.ID) error

	// Resume resumes the paused playback.
	Resume(ctx context.Context, guildID snowflake.ID) error
}

// VoiceConnection defines voice channel connection operations.
type VoiceConnection interface {
	// JoinChannel connects the bot to the specified voice channel.
	JoinChannel(ctx context.Context, guildID, channelID snowflake.ID) error

	// LeaveChannel disconnects the bot from the voice channel.
	LeaveChannel(ctx context.Context, guildID snowflake.ID) error
}

// VoiceStateProvider resolves a user's current voice channel.
type VoiceStateProvider interface {
	// UserVoiceChannel returns the voice channel the user is in, or nil if
	// the user is not in a resolvable voice channel.
	UserVoiceChannel(guildID, userID snowflake.ID) (*snowflake.ID, error)
}
