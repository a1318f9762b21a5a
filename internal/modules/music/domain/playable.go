package domain

import "time"

// Source identifies the provider a playable originates from.
type Source string

const (
	SourceSpotify Source = "spotify"
	SourceYouTube Source = "youtube"
)

// Playable is a provider-agnostic reference to exactly one audio source.
// It carries everything playback needs; starting audio from a Playable must
// never require another provider lookup.
type Playable struct {
	Source     Source
	ID         string
	Title      string
	Creator    string
	URI        string
	PreviewURL string
	Duration   time.Duration
	// Preview selects the short preview audio over the full track.
	// Only ever true for Spotify tracks; video has no preview concept.
	Preview bool
}

// AudioURI returns the URI the audio transport should load.
func (p Playable) AudioURI() string {
	if p.Preview && p.PreviewURL != "" {
		return p.PreviewURL
	}
	return p.URI
}

// Batch is an ordered sequence of playables derived from one collection
// match. Ordering equals provider-reported ordering and is preserved
// end-to-end into the queue.
type Batch []Playable
