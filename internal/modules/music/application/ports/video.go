package ports

import (
	"context"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// VideoSearcher defines the search surface of the video-hosting provider.
type VideoSearcher interface {
	// SearchVideo returns the single best match for the query, or nil when
	// nothing matched.
	SearchVideo(ctx context.Context, query string) (*domain.YouTubeVideo, error)

	// SearchVideos returns up to limit matches for the query.
	SearchVideos(ctx context.Context, limit int, query string) ([]domain.YouTubeVideo, error)

	// SearchPlaylist returns the single best playlist match for the query,
	// or nil when nothing matched.
	SearchPlaylist(ctx context.Context, query string) (*domain.YouTubePlaylist, error)

	// SearchPlaylists returns up to limit playlist matches for the query.
	SearchPlaylists(ctx context.Context, limit int, query string) ([]domain.YouTubePlaylist, error)

	// PlaylistVideos resolves a playlist's full video list in provider order.
	PlaylistVideos(ctx context.Context, playlistID string) ([]domain.YouTubeVideo, error)
}
