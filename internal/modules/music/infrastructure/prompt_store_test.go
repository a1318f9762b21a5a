package infrastructure

import (
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

func testPrompt(id string, guildID, userID snowflake.ID) *domain.Prompt {
	return &domain.Prompt{
		ID:        id,
		Key:       domain.PromptKey{GuildID: guildID, UserID: userID},
		CreatedAt: time.Now(),
	}
}

func TestPromptStore_GetDoesNotRemove(t *testing.T) {
	store, err := NewPromptStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	prompt := testPrompt("p1", 1, 2)
	store.Put(prompt)

	if got := store.Get(prompt.Key); got == nil || got.ID != "p1" {
		t.Fatalf("Get = %v, want p1", got)
	}
	if got := store.Get(prompt.Key); got == nil || got.ID != "p1" {
		t.Errorf("second Get = %v, want the prompt still pending", got)
	}
}

func TestPromptStore_InvalidateRemovesEntry(t *testing.T) {
	store, err := NewPromptStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	prompt := testPrompt("p1", 1, 2)
	store.Put(prompt)
	store.Invalidate(prompt.Key)

	if got := store.Get(prompt.Key); got != nil {
		t.Errorf("Get after Invalidate = %v, want nil", got)
	}
}

func TestPromptStore_PutSupersedes(t *testing.T) {
	store, err := NewPromptStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	key := domain.PromptKey{GuildID: 1, UserID: 2}
	store.Put(testPrompt("old", 1, 2))
	store.Put(testPrompt("new", 1, 2))

	got := store.Get(key)
	if got == nil || got.ID != "new" {
		t.Errorf("Get = %v, want the superseding prompt", got)
	}
}

func TestPromptStore_KeysAreIndependent(t *testing.T) {
	store, err := NewPromptStore()
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	store.Put(testPrompt("a", 1, 2))
	store.Put(testPrompt("b", 1, 3))

	store.Invalidate(domain.PromptKey{GuildID: 1, UserID: 2})

	if got := store.Get(domain.PromptKey{GuildID: 1, UserID: 3}); got == nil || got.ID != "b" {
		t.Errorf("Get = %v, want the other user's prompt intact", got)
	}
}
