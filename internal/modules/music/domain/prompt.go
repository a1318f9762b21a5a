package domain

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// PromptKey addresses the single pending disambiguation prompt a user may
// have in a guild. A second prompt under the same key supersedes the first.
type PromptKey struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
}

// Prompt is the durable record of a suspended resolution: the candidate set
// offered to the user plus the flags of the original request. It deliberately
// excludes the voice and notification channels, which are resolved fresh at
// selection time.
type Prompt struct {
	ID         string // interaction ID of the originating play command
	Key        PromptKey
	Candidates []Match
	Flags      Flags
	CreatedAt  time.Time
}

// Candidate returns the candidate at index, or nil if out of range.
func (p *Prompt) Candidate(index int) Match {
	if index < 0 || index >= len(p.Candidates) {
		return nil
	}
	return p.Candidates[index]
}

// Expired reports whether the prompt is older than ttl.
func (p *Prompt) Expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(p.CreatedAt) > ttl
}
