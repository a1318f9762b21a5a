package domain

import (
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// Flags holds the modifier flags recognized by the play command.
// The zero value means "no flags set".
type Flags struct {
	List    bool
	Preview bool
	Spotify bool
	Youtube bool
	Own     bool
	Local   bool
	Limit   int // 0 means unset; valid values are 1-10
}

// WantFullAudio reports whether the full resolved audio should be used
// instead of the short preview.
func (f Flags) WantFullAudio() bool {
	return !f.Preview
}

// PlayRequest is the immutable context of one play invocation.
// The requester's voice channel is deliberately not part of the request;
// it is resolved fresh whenever playback is about to start, since the user
// may move between channels while a resolution is suspended.
type PlayRequest struct {
	Body                  string
	Flags                 Flags
	GuildID               snowflake.ID
	UserID                snowflake.ID
	NotificationChannelID snowflake.ID
}

// HasBody reports whether the request carries non-blank command text.
func (r PlayRequest) HasBody() bool {
	return strings.TrimSpace(r.Body) != ""
}
