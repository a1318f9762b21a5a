package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// ListService manages locally persisted lists: saving the current queue
// under a name, deleting lists and enumerating them.
type ListService struct {
	lists    ports.LocalListStore
	registry domain.PlayerRegistry
}

// NewListService creates a new ListService.
func NewListService(lists ports.LocalListStore, registry domain.PlayerRegistry) *ListService {
	return &ListService{
		lists:    lists,
		registry: registry,
	}
}

// SaveQueue persists the guild's current queue as a named list. The name
// must be non-blank and not already taken; the queue must be non-empty.
func (s *ListService) SaveQueue(
	ctx context.Context,
	guildID snowflake.ID,
	name string,
) (*domain.LocalList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: list name must not be blank", domain.ErrInvalidArgument)
	}

	player := s.registry.ExistingPlayer(guildID)
	if player == nil || player.IsQueueEmpty() {
		return nil, domain.ErrEmptyQueue
	}

	existing, err := s.lists.Lookup(ctx, guildID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: a list named %q already exists", domain.ErrInvalidArgument, existing.Name)
	}

	snapshot := player.QueueSnapshot()
	items := make([]domain.LocalItem, 0, len(snapshot))
	for _, playable := range snapshot {
		items = append(items, domain.LocalItem{
			Source:     playable.Source,
			ID:         playable.ID,
			Title:      playable.Title,
			Creator:    playable.Creator,
			URI:        playable.URI,
			PreviewURL: playable.PreviewURL,
			Duration:   playable.Duration,
		})
	}

	return s.lists.Create(ctx, guildID, name, items)
}

// Delete removes the guild's list with the given name.
func (s *ListService) Delete(ctx context.Context, guildID snowflake.ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: list name must not be blank", domain.ErrInvalidArgument)
	}
	return s.lists.Delete(ctx, guildID, name)
}

// Names returns the guild's list names.
func (s *ListService) Names(ctx context.Context, guildID snowflake.ID) ([]string, error) {
	return s.lists.Names(ctx, guildID)
}
