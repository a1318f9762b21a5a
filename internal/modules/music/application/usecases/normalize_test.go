package usecases

import (
	"testing"

	"github.com/tathaha/aiode/internal/modules/music/domain"
)

func TestNormalize_OutcomeKinds(t *testing.T) {
	tests := []struct {
		name    string
		matches []domain.Match
		want    domain.OutcomeKind
	}{
		{
			name: "no matches",
			want: domain.OutcomeEmpty,
		},
		{
			name:    "single match",
			matches: []domain.Match{mockSpotifyTrack("t1")},
			want:    domain.OutcomeSingle,
		},
		{
			name: "multiple matches",
			matches: []domain.Match{
				mockSpotifyTrack("t1"),
				mockSpotifyTrack("t2"),
			},
			want: domain.OutcomeAmbiguous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Normalize(tt.matches, true)
			if outcome.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", outcome.Kind, tt.want)
			}
		})
	}
}

func TestNormalize_AmbiguousKeepsCandidateOrder(t *testing.T) {
	matches := []domain.Match{
		mockSpotifyTrack("t1"),
		mockVideo("v1"),
		mockSpotifyTrack("t2"),
	}

	outcome := Normalize(matches, true)

	if outcome.Kind != domain.OutcomeAmbiguous {
		t.Fatalf("Kind = %v, want %v", outcome.Kind, domain.OutcomeAmbiguous)
	}
	if len(outcome.Candidates) != len(matches) {
		t.Fatalf("len(Candidates) = %d, want %d", len(outcome.Candidates), len(matches))
	}
	for i := range matches {
		if outcome.Candidates[i].Label() != matches[i].Label() {
			t.Errorf("Candidates[%d] = %q, want %q", i, outcome.Candidates[i].Label(), matches[i].Label())
		}
	}
	if outcome.Batch != nil {
		t.Error("ambiguous outcome should carry no batch")
	}
}

func TestNormalize_SpotifyTrackPreview(t *testing.T) {
	track := mockSpotifyTrack("t1")

	tests := []struct {
		name          string
		wantFullAudio bool
		wantPreview   bool
		wantAudioURI  string
	}{
		{
			name:          "full audio",
			wantFullAudio: true,
			wantAudioURI:  track.URI,
		},
		{
			name:         "preview",
			wantPreview:  true,
			wantAudioURI: track.PreviewURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Normalize([]domain.Match{track}, tt.wantFullAudio)

			if len(outcome.Batch) != 1 {
				t.Fatalf("len(Batch) = %d, want 1", len(outcome.Batch))
			}
			playable := outcome.Batch[0]
			if playable.Preview != tt.wantPreview {
				t.Errorf("Preview = %v, want %v", playable.Preview, tt.wantPreview)
			}
			if playable.AudioURI() != tt.wantAudioURI {
				t.Errorf("AudioURI() = %q, want %q", playable.AudioURI(), tt.wantAudioURI)
			}
			if playable.Source != domain.SourceSpotify {
				t.Errorf("Source = %q, want %q", playable.Source, domain.SourceSpotify)
			}
		})
	}
}

func TestNormalize_VideoNeverPreview(t *testing.T) {
	video := mockVideo("v1")

	outcome := Normalize([]domain.Match{video}, false)

	if len(outcome.Batch) != 1 {
		t.Fatalf("len(Batch) = %d, want 1", len(outcome.Batch))
	}
	playable := outcome.Batch[0]
	if playable.Preview {
		t.Error("video playable must not be a preview")
	}
	if playable.AudioURI() != video.URI {
		t.Errorf("AudioURI() = %q, want %q", playable.AudioURI(), video.URI)
	}
}

func TestNormalize_SpotifyPlaylistSkipsUnresolvableTracks(t *testing.T) {
	playlist := domain.SpotifyPlaylist{
		ID:    "p1",
		Name:  "Mix",
		Owner: "owner",
		Tracks: []domain.SpotifyTrack{
			mockSpotifyTrack("t1"),
			{Title: "Ghost"}, // empty ID, dropped
			mockSpotifyTrack("t2"),
		},
	}

	outcome := Normalize([]domain.Match{playlist}, true)

	if len(outcome.Batch) != 2 {
		t.Fatalf("len(Batch) = %d, want 2", len(outcome.Batch))
	}
	if outcome.Batch[0].ID != "t1" || outcome.Batch[1].ID != "t2" {
		t.Errorf("batch order = [%s %s], want [t1 t2]", outcome.Batch[0].ID, outcome.Batch[1].ID)
	}
}

func TestNormalize_YouTubePlaylistPreservesOrder(t *testing.T) {
	playlist := domain.YouTubePlaylist{
		ID:      "pl1",
		Title:   "Uploads",
		Channel: "Channel",
		Videos: []domain.YouTubeVideo{
			mockVideo("v1"),
			mockVideo("v2"),
			mockVideo("v3"),
		},
	}

	outcome := Normalize([]domain.Match{playlist}, false)

	if len(outcome.Batch) != 3 {
		t.Fatalf("len(Batch) = %d, want 3", len(outcome.Batch))
	}
	for i, want := range []string{"v1", "v2", "v3"} {
		if outcome.Batch[i].ID != want {
			t.Errorf("Batch[%d].ID = %q, want %q", i, outcome.Batch[i].ID, want)
		}
		if outcome.Batch[i].Preview {
			t.Errorf("Batch[%d] must not be a preview", i)
		}
	}
}

func TestNormalize_LocalListMixedSources(t *testing.T) {
	list := domain.LocalList{
		Name: "favorites",
		Items: []domain.LocalItem{
			{
				Source:     domain.SourceSpotify,
				ID:         "t1",
				Title:      "A",
				URI:        "spotify:track:t1",
				PreviewURL: "https://p.scdn.co/t1",
			},
			{
				Source: domain.SourceYouTube,
				ID:     "v1",
				Title:  "B",
				URI:    "https://www.youtube.com/watch?v=v1",
			},
			{Source: domain.SourceSpotify, ID: "t2", Title: "C"}, // no URI, dropped
		},
	}

	outcome := Normalize([]domain.Match{list}, false)

	if len(outcome.Batch) != 2 {
		t.Fatalf("len(Batch) = %d, want 2", len(outcome.Batch))
	}
	if !outcome.Batch[0].Preview {
		t.Error("spotify item should be a preview when full audio is not wanted")
	}
	if outcome.Batch[1].Preview {
		t.Error("youtube item must never be a preview")
	}
}
