package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// LocalListStore looks up locally persisted lists.
type LocalListStore interface {
	// Lookup returns the guild's list with the given name, matched
	// case-insensitively, or nil when no such list exists.
	Lookup(ctx context.Context, guildID snowflake.ID, name string) (*domain.LocalList, error)

	// Create persists a new list with the given items.
	Create(ctx context.Context, guildID snowflake.ID, name string, items []domain.LocalItem) (*domain.LocalList, error)

	// Delete removes the guild's list with the given name, matched
	// case-insensitively. Deleting a list that does not exist yields
	// domain.ErrInvalidArgument.
	Delete(ctx context.Context, guildID snowflake.ID, name string) error

	// Names returns the names of all lists stored for the guild.
	Names(ctx context.Context, guildID snowflake.ID) ([]string, error)
}
