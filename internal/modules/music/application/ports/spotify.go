package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// SpotifySession is an authorized handle on the streaming-metadata provider.
// Callers obtain one from the Authorizer and pass it into every search, so
// the credential scope of each call is visible at the call site.
type SpotifySession interface {
	// SearchTracks searches the global catalog, returning up to limit tracks.
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.SpotifyTrack, error)

	// SearchOwnTracks searches the session user's saved tracks. Only valid
	// on user-scoped sessions.
	SearchOwnTracks(ctx context.Context, query string, limit int) ([]domain.SpotifyTrack, error)

	// SearchPlaylists searches the global catalog for playlists.
	SearchPlaylists(ctx context.Context, query string, limit int) ([]domain.SpotifyPlaylist, error)

	// SearchOwnPlaylists searches the session user's own playlists. Only
	// valid on user-scoped sessions.
	SearchOwnPlaylists(ctx context.Context, query string, limit int) ([]domain.SpotifyPlaylist, error)

	// PlaylistTracks resolves the full track list of a playlist reference,
	// in provider order.
	PlaylistTracks(ctx context.Context, playlistID string) ([]domain.SpotifyTrack, error)

	// Track fetches a single track by ID.
	Track(ctx context.Context, trackID string) (*domain.SpotifyTrack, error)
}

// SpotifyAuthorizer hands out credential-scoped provider sessions.
type SpotifyAuthorizer interface {
	// Anonymous returns a session backed by application-level credentials,
	// refreshing the app token transparently.
	Anonymous(ctx context.Context) (SpotifySession, error)

	// ForUser returns a session backed by the user's delegated authorization,
	// refreshing it transparently if expired. A missing or unrefreshable
	// user session yields domain.ErrAuthorization; it never falls back to
	// anonymous scope.
	ForUser(ctx context.Context, userID snowflake.ID) (SpotifySession, error)
}
