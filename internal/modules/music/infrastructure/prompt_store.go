package infrastructure

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// promptCacheSize bounds the number of pending prompts kept in memory. Each
// (guild, user) pair holds at most one entry, so displacement only hits the
// least recently active users.
const promptCacheSize = 4096

// PromptStore is a bounded in-memory store for pending disambiguation
// prompts. The LRU cache is safe for concurrent use.
type PromptStore struct {
	cache *lru.Cache[domain.PromptKey, *domain.Prompt]
}

// NewPromptStore creates a new PromptStore.
func NewPromptStore() (*PromptStore, error) {
	cache, err := lru.New[domain.PromptKey, *domain.Prompt](promptCacheSize)
	if err != nil {
		return nil, err
	}
	return &PromptStore{cache: cache}, nil
}

var _ ports.PromptStore = (*PromptStore)(nil)

// Put stores the prompt under its key, replacing any pending prompt for the
// same key.
func (s *PromptStore) Put(prompt *domain.Prompt) {
	s.cache.Add(prompt.Key, prompt)
}

// Get returns the pending prompt for the key without removing it, or nil
// when none is pending.
func (s *PromptStore) Get(key domain.PromptKey) *domain.Prompt {
	prompt, ok := s.cache.Get(key)
	if !ok {
		return nil
	}
	return prompt
}

// Invalidate drops the pending prompt for the key, if any.
func (s *PromptStore) Invalidate(key domain.PromptKey) {
	s.cache.Remove(key)
}
