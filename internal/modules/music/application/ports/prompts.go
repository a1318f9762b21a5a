package ports

import "github.com/tathaha/aiode/internal/modules/music/domain"

// PromptStore holds pending disambiguation prompts. Implementations must be
// bounded in memory and keyed per (guild, user) so a newer prompt for the
// same user supersedes the older one instead of leaking it.
type PromptStore interface {
	// Put stores the prompt under its key, replacing any pending prompt for
	// the same key.
	Put(prompt *domain.Prompt)

	// Get returns the pending prompt for the key without removing it, or nil
	// when none is pending.
	Get(key domain.PromptKey) *domain.Prompt

	// Invalidate drops the pending prompt for the key, if any.
	Invalidate(key domain.PromptKey)
}
