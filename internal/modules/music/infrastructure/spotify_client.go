package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// playlistPageSize is the page size used when walking playlist items.
const playlistPageSize = 100

// spotifySession adapts a zmb3 Spotify client to the session port. One
// session wraps one credential scope; the authorizer decides which.
type spotifySession struct {
	client     *spotify.Client
	userScoped bool
}

var _ ports.SpotifySession = (*spotifySession)(nil)

func (s *spotifySession) SearchTracks(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.SpotifyTrack, error) {
	results, err := s.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("track search failed: %w", err)
	}
	if results.Tracks == nil {
		return nil, nil
	}

	tracks := make([]domain.SpotifyTrack, 0, len(results.Tracks.Tracks))
	for i := range results.Tracks.Tracks {
		tracks = append(tracks, convertTrack(&results.Tracks.Tracks[i]))
	}
	return tracks, nil
}

// SearchOwnTracks walks the user's saved tracks and filters them by the
// query. The provider has no server-side search over saved tracks.
func (s *spotifySession) SearchOwnTracks(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.SpotifyTrack, error) {
	if !s.userScoped {
		return nil, domain.ErrAuthorization
	}

	var matched []domain.SpotifyTrack
	offset := 0
	for {
		page, err := s.client.CurrentUsersTracks(ctx,
			spotify.Limit(playlistPageSize), spotify.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to list saved tracks: %w", err)
		}

		for i := range page.Tracks {
			track := convertTrack(&page.Tracks[i].FullTrack)
			if matchesQuery(track.Label(), query) {
				matched = append(matched, track)
				if len(matched) >= limit {
					return matched, nil
				}
			}
		}

		if len(page.Tracks) < playlistPageSize {
			return matched, nil
		}
		offset += playlistPageSize
	}
}

func (s *spotifySession) SearchPlaylists(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.SpotifyPlaylist, error) {
	results, err := s.client.Search(ctx, query, spotify.SearchTypePlaylist, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("playlist search failed: %w", err)
	}
	if results.Playlists == nil {
		return nil, nil
	}

	playlists := make([]domain.SpotifyPlaylist, 0, len(results.Playlists.Playlists))
	for i := range results.Playlists.Playlists {
		playlists = append(playlists, convertPlaylist(&results.Playlists.Playlists[i]))
	}
	return playlists, nil
}

// SearchOwnPlaylists walks the user's playlists and filters them by name.
func (s *spotifySession) SearchOwnPlaylists(
	ctx context.Context,
	query string,
	limit int,
) ([]domain.SpotifyPlaylist, error) {
	if !s.userScoped {
		return nil, domain.ErrAuthorization
	}

	var matched []domain.SpotifyPlaylist
	offset := 0
	for {
		page, err := s.client.CurrentUsersPlaylists(ctx,
			spotify.Limit(playlistPageSize), spotify.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to list playlists: %w", err)
		}

		for i := range page.Playlists {
			playlist := convertPlaylist(&page.Playlists[i])
			if matchesQuery(playlist.Name, query) {
				matched = append(matched, playlist)
				if len(matched) >= limit {
					return matched, nil
				}
			}
		}

		if len(page.Playlists) < playlistPageSize {
			return matched, nil
		}
		offset += playlistPageSize
	}
}

// PlaylistTracks walks all pages of the playlist and returns its tracks in
// provider order. Episodes and null items are skipped.
func (s *spotifySession) PlaylistTracks(
	ctx context.Context,
	playlistID string,
) ([]domain.SpotifyTrack, error) {
	var tracks []domain.SpotifyTrack
	offset := 0
	for {
		items, err := s.client.GetPlaylistItems(ctx, spotify.ID(playlistID),
			spotify.Limit(playlistPageSize), spotify.Offset(offset))
		if err != nil {
			return nil, fmt.Errorf("failed to get playlist items: %w", err)
		}

		for i := range items.Items {
			if items.Items[i].Track.Track == nil {
				continue
			}
			tracks = append(tracks, convertTrack(items.Items[i].Track.Track))
		}

		if len(items.Items) < playlistPageSize {
			break
		}
		offset += playlistPageSize
	}
	return tracks, nil
}

func (s *spotifySession) Track(ctx context.Context, trackID string) (*domain.SpotifyTrack, error) {
	track, err := s.client.GetTrack(ctx, spotify.ID(trackID))
	if err != nil {
		return nil, fmt.Errorf("failed to get track: %w", err)
	}
	converted := convertTrack(track)
	return &converted, nil
}

func convertTrack(track *spotify.FullTrack) domain.SpotifyTrack {
	artists := make([]string, len(track.Artists))
	for i, artist := range track.Artists {
		artists[i] = artist.Name
	}

	return domain.SpotifyTrack{
		ID:         string(track.ID),
		Title:      track.Name,
		Artists:    artists,
		Album:      track.Album.Name,
		URI:        trackURL(string(track.ID)),
		PreviewURL: track.PreviewURL,
		Duration:   track.TimeDuration(),
	}
}

func convertPlaylist(playlist *spotify.SimplePlaylist) domain.SpotifyPlaylist {
	return domain.SpotifyPlaylist{
		ID:    string(playlist.ID),
		Name:  playlist.Name,
		Owner: playlist.Owner.DisplayName,
	}
}

func trackURL(id string) string {
	return "https://open.spotify.com/track/" + id
}

func matchesQuery(candidate, query string) bool {
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(query))
}
