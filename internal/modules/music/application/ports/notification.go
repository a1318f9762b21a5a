package ports

import (
	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// Notifier sends playback notifications to text channels.
type Notifier interface {
	// SendNowPlaying announces the playable that just started.
	SendNowPlaying(channelID snowflake.ID, playable domain.Playable) error

	// SendError sends a user-visible error message.
	SendError(channelID snowflake.ID, message string) error
}
