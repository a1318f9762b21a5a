package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

const (
	// youtubeAPIBaseURL is the YouTube Data API v3 endpoint.
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"
	// youtubeRequestTimeout is the timeout for YouTube API requests.
	youtubeRequestTimeout = 10 * time.Second
	// playlistItemsPageSize is the page size when walking playlist items.
	playlistItemsPageSize = 50
)

// YouTubeClient searches the YouTube Data API v3.
type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewYouTubeClient creates a new YouTubeClient.
func NewYouTubeClient(apiKey string) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: youtube API key is not set", domain.ErrConfiguration)
	}
	return &YouTubeClient{
		apiKey:  apiKey,
		baseURL: youtubeAPIBaseURL,
		client: &http.Client{
			Timeout: youtubeRequestTimeout,
		},
	}, nil
}

var _ ports.VideoSearcher = (*YouTubeClient)(nil)

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID    string `json:"videoId"`
			PlaylistID string `json:"playlistId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			ResourceID   struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideo returns the single best match for the query, or nil when
// nothing matched.
func (c *YouTubeClient) SearchVideo(ctx context.Context, query string) (*domain.YouTubeVideo, error) {
	videos, err := c.SearchVideos(ctx, 1, query)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return &videos[0], nil
}

// SearchVideos returns up to limit matches for the query.
func (c *YouTubeClient) SearchVideos(ctx context.Context, limit int, query string) ([]domain.YouTubeVideo, error) {
	params := url.Values{
		"part":       {"snippet"},
		"type":       {"video"},
		"q":          {query},
		"maxResults": {strconv.Itoa(limit)},
	}

	var result searchResponse
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return nil, err
	}

	videos := make([]domain.YouTubeVideo, 0, len(result.Items))
	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, domain.YouTubeVideo{
			ID:      item.ID.VideoID,
			Title:   item.Snippet.Title,
			Channel: item.Snippet.ChannelTitle,
			URI:     watchURL(item.ID.VideoID),
		})
		ids = append(ids, item.ID.VideoID)
	}

	if err := c.fillDurations(ctx, ids, videos); err != nil {
		// Durations are display-only, the search result stands without them.
		return videos, nil
	}
	return videos, nil
}

// SearchPlaylist returns the single best playlist match for the query, or
// nil when nothing matched.
func (c *YouTubeClient) SearchPlaylist(ctx context.Context, query string) (*domain.YouTubePlaylist, error) {
	playlists, err := c.SearchPlaylists(ctx, 1, query)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, nil
	}
	return &playlists[0], nil
}

// SearchPlaylists returns up to limit playlist matches for the query.
func (c *YouTubeClient) SearchPlaylists(ctx context.Context, limit int, query string) ([]domain.YouTubePlaylist, error) {
	params := url.Values{
		"part":       {"snippet"},
		"type":       {"playlist"},
		"q":          {query},
		"maxResults": {strconv.Itoa(limit)},
	}

	var result searchResponse
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return nil, err
	}

	playlists := make([]domain.YouTubePlaylist, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.PlaylistID == "" {
			continue
		}
		playlists = append(playlists, domain.YouTubePlaylist{
			ID:      item.ID.PlaylistID,
			Title:   item.Snippet.Title,
			Channel: item.Snippet.ChannelTitle,
		})
	}
	return playlists, nil
}

// PlaylistVideos walks all pages of the playlist and returns its videos in
// provider order. Deleted and private entries are skipped.
func (c *YouTubeClient) PlaylistVideos(ctx context.Context, playlistID string) ([]domain.YouTubeVideo, error) {
	var videos []domain.YouTubeVideo
	pageToken := ""

	for {
		params := url.Values{
			"part":       {"snippet"},
			"playlistId": {playlistID},
			"maxResults": {strconv.Itoa(playlistItemsPageSize)},
		}
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var result playlistItemsResponse
		if err := c.get(ctx, "/playlistItems", params, &result); err != nil {
			return nil, err
		}

		for _, item := range result.Items {
			videoID := item.Snippet.ResourceID.VideoID
			if videoID == "" || item.Snippet.Title == "Deleted video" || item.Snippet.Title == "Private video" {
				continue
			}
			videos = append(videos, domain.YouTubeVideo{
				ID:      videoID,
				Title:   item.Snippet.Title,
				Channel: item.Snippet.ChannelTitle,
				URI:     watchURL(videoID),
			})
		}

		if result.NextPageToken == "" {
			return videos, nil
		}
		pageToken = result.NextPageToken
	}
}

// fillDurations fetches contentDetails for the given video IDs and writes
// the parsed durations back into videos, matched by ID.
func (c *YouTubeClient) fillDurations(ctx context.Context, ids []string, videos []domain.YouTubeVideo) error {
	if len(ids) == 0 {
		return nil
	}

	params := url.Values{
		"part": {"contentDetails"},
		"id":   {strings.Join(ids, ",")},
	}

	var result videosResponse
	if err := c.get(ctx, "/videos", params, &result); err != nil {
		return err
	}

	durations := make(map[string]time.Duration, len(result.Items))
	for _, item := range result.Items {
		durations[item.ID] = parseISO8601Duration(item.ContentDetails.Duration)
	}
	for i := range videos {
		videos[i].Duration = durations[videos[i].ID]
	}
	return nil
}

func (c *YouTubeClient) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("youtube API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode youtube API response: %w", err)
	}
	return nil
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// parseISO8601Duration parses durations of the form PT#H#M#S. Malformed
// input yields zero.
func parseISO8601Duration(s string) time.Duration {
	s = strings.TrimPrefix(s, "PT")

	var total time.Duration
	var number strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			number.WriteRune(r)
			continue
		}

		value, err := strconv.Atoi(number.String())
		if err != nil {
			return 0
		}
		number.Reset()

		switch r {
		case 'H':
			total += time.Duration(value) * time.Hour
		case 'M':
			total += time.Duration(value) * time.Minute
		case 'S':
			total += time.Duration(value) * time.Second
		default:
			return 0
		}
	}
	return total
}
