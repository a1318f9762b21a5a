package infrastructure

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

func newTestListRepository(t *testing.T) *ListRepository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lists.db")
	repo, err := NewListRepository(path)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(path) })
	return repo
}

func TestListRepository_CreateAndLookup(t *testing.T) {
	repo := newTestListRepository(t)
	ctx := context.Background()
	guildID := snowflake.ID(1)

	items := []domain.LocalItem{
		{
			Source:     domain.SourceSpotify,
			ID:         "t1",
			Title:      "First",
			Creator:    "Artist",
			URI:        "https://open.spotify.com/track/t1",
			PreviewURL: "https://p.scdn.co/t1",
			Duration:   3 * time.Minute,
		},
		{
			Source:  domain.SourceYouTube,
			ID:      "v1",
			Title:   "Second",
			Creator: "Channel",
			URI:     "https://www.youtube.com/watch?v=v1",
		},
	}

	created, err := repo.Create(ctx, guildID, "Road Trip", items)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("created list should have an ID")
	}

	found, err := repo.Lookup(ctx, guildID, "road trip")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found == nil {
		t.Fatal("lookup should match case-insensitively")
	}
	if found.Name != "Road Trip" {
		t.Errorf("Name = %q, want the original casing", found.Name)
	}
	if len(found.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(found.Items))
	}
	if found.Items[0].ID != "t1" || found.Items[1].ID != "v1" {
		t.Errorf("item order = [%s %s], want [t1 v1]", found.Items[0].ID, found.Items[1].ID)
	}
	if found.Items[0].Duration != 3*time.Minute {
		t.Errorf("Duration = %v, want 3m", found.Items[0].Duration)
	}
	if found.Items[0].Source != domain.SourceSpotify {
		t.Errorf("Source = %q, want %q", found.Items[0].Source, domain.SourceSpotify)
	}
}

func TestListRepository_LookupMiss(t *testing.T) {
	repo := newTestListRepository(t)

	found, err := repo.Lookup(context.Background(), snowflake.ID(1), "nothing")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != nil {
		t.Errorf("found = %+v, want nil on miss", found)
	}
}

func TestListRepository_GuildScoping(t *testing.T) {
	repo := newTestListRepository(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, snowflake.ID(1), "shared name", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, snowflake.ID(2), "shared name", nil); err != nil {
		t.Fatalf("create in second guild: %v", err)
	}

	found, err := repo.Lookup(ctx, snowflake.ID(3), "shared name")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != nil {
		t.Error("lookups must be scoped to the guild")
	}
}

func TestListRepository_Delete(t *testing.T) {
	repo := newTestListRepository(t)
	ctx := context.Background()
	guildID := snowflake.ID(1)

	if _, err := repo.Create(ctx, guildID, "doomed", []domain.LocalItem{
		{Source: domain.SourceSpotify, ID: "t1", Title: "A", URI: "u"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, guildID, "DOOMED"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	found, err := repo.Lookup(ctx, guildID, "doomed")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found != nil {
		t.Error("list should be gone")
	}

	err = repo.Delete(ctx, guildID, "doomed")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestListRepository_Names(t *testing.T) {
	repo := newTestListRepository(t)
	ctx := context.Background()
	guildID := snowflake.ID(1)

	for _, name := range []string{"first", "second"} {
		if _, err := repo.Create(ctx, guildID, name, nil); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	names, err := repo.Names(ctx, guildID)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("names = %v, want [first second]", names)
	}
}
