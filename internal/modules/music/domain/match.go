package domain

import (
	"strings"
	"time"
)

// Match is a provider-native search result before normalization.
// The variant set is closed: every implementation lives in this package and
// Normalize switches over it exhaustively. The unexported marker method keeps
// outside packages from adding variants.
type Match interface {
	// Label is the primary line shown when the user must pick between matches.
	Label() string
	// Sublabel is the secondary line, empty when the variant has none.
	Sublabel() string

	isMatch()
}

// SpotifyTrack is a single track returned by the streaming-metadata provider.
type SpotifyTrack struct {
	ID         string
	Title      string
	Artists    []string
	Album      string
	URI        string // open.spotify.com track URL
	PreviewURL string // short preview mp3, may be empty
	Duration   time.Duration
}

func (t SpotifyTrack) Label() string {
	return t.Title + " by " + strings.Join(t.Artists, ", ")
}

func (t SpotifyTrack) Sublabel() string { return t.Album }

func (SpotifyTrack) isMatch() {}

// Creator returns the joined artist list for display on playables.
func (t SpotifyTrack) Creator() string { return strings.Join(t.Artists, ", ") }

// SpotifyPlaylist is a playlist reference returned by the streaming-metadata
// provider. Tracks is nil until the playlist has been resolved; resolution
// happens before normalization so that the derived batch needs no further
// provider calls.
type SpotifyPlaylist struct {
	ID     string
	Name   string
	Owner  string
	Tracks []SpotifyTrack // nil when unresolved
}

func (p SpotifyPlaylist) Label() string    { return p.Name }
func (p SpotifyPlaylist) Sublabel() string { return p.Owner }

func (SpotifyPlaylist) isMatch() {}

// Resolved reports whether the playlist's track list has been fetched.
func (p SpotifyPlaylist) Resolved() bool { return p.Tracks != nil }

// YouTubeVideo is a single video returned by the video-hosting provider.
type YouTubeVideo struct {
	ID       string
	Title    string
	Channel  string
	URI      string // youtube watch URL
	Duration time.Duration
}

func (v YouTubeVideo) Label() string    { return v.Title }
func (v YouTubeVideo) Sublabel() string { return "" }

func (YouTubeVideo) isMatch() {}

// YouTubePlaylist is a video playlist. Videos is nil until resolved.
type YouTubePlaylist struct {
	ID      string
	Title   string
	Channel string
	Videos  []YouTubeVideo // nil when unresolved
}

func (p YouTubePlaylist) Label() string    { return p.Title }
func (p YouTubePlaylist) Sublabel() string { return p.Channel }

func (YouTubePlaylist) isMatch() {}

// Resolved reports whether the playlist's video list has been fetched.
func (p YouTubePlaylist) Resolved() bool { return p.Videos != nil }

// LocalItem is one entry of a locally persisted list. Lists may mix Spotify
// tracks and YouTube videos; each item caches everything needed to play it.
type LocalItem struct {
	Source     Source
	ID         string
	Title      string
	Creator    string
	URI        string
	PreviewURL string
	Duration   time.Duration
}

// LocalList is a locally persisted, guild-scoped list of mixed items.
type LocalList struct {
	ID    uint
	Name  string
	Items []LocalItem
}

func (l LocalList) Label() string    { return l.Name }
func (l LocalList) Sublabel() string { return "" }

func (LocalList) isMatch() {}
