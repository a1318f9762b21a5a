package usecases

import (
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// Normalize collapses a set of raw matches into a single decision.
// Zero matches yield Empty, one match yields Single with the derived batch,
// two or more yield Ambiguous with the untouched candidate set. A collection
// match handed in here must already be resolved; unresolvable members are
// skipped silently.
func Normalize(matches []domain.Match, wantFullAudio bool) domain.Outcome {
	switch len(matches) {
	case 0:
		return domain.Outcome{Kind: domain.OutcomeEmpty}
	case 1:
		return domain.Outcome{
			Kind:  domain.OutcomeSingle,
			Batch: batchFor(matches[0], wantFullAudio),
		}
	default:
		return domain.Outcome{Kind: domain.OutcomeAmbiguous, Candidates: matches}
	}
}

// batchFor derives the ordered batch for a single match. There is exactly one
// rule per match variant; video-sourced playables are always full audio since
// video has no preview concept.
func batchFor(match domain.Match, wantFullAudio bool) domain.Batch {
	switch m := match.(type) {
	case domain.SpotifyTrack:
		return domain.Batch{spotifyPlayable(m, wantFullAudio)}

	case domain.SpotifyPlaylist:
		batch := make(domain.Batch, 0, len(m.Tracks))
		for _, track := range m.Tracks {
			if track.ID == "" {
				continue
			}
			batch = append(batch, spotifyPlayable(track, wantFullAudio))
		}
		return batch

	case domain.YouTubeVideo:
		return domain.Batch{videoPlayable(m)}

	case domain.YouTubePlaylist:
		batch := make(domain.Batch, 0, len(m.Videos))
		for _, video := range m.Videos {
			if video.ID == "" {
				continue
			}
			batch = append(batch, videoPlayable(video))
		}
		return batch

	case domain.LocalList:
		batch := make(domain.Batch, 0, len(m.Items))
		for _, item := range m.Items {
			if item.URI == "" {
				continue
			}
			batch = append(batch, domain.Playable{
				Source:     item.Source,
				ID:         item.ID,
				Title:      item.Title,
				Creator:    item.Creator,
				URI:        item.URI,
				PreviewURL: item.PreviewURL,
				Duration:   item.Duration,
				Preview:    !wantFullAudio && item.Source == domain.SourceSpotify,
			})
		}
		return batch
	}

	// Unreachable: the Match variant set is closed.
	return nil
}

func spotifyPlayable(track domain.SpotifyTrack, wantFullAudio bool) domain.Playable {
	return domain.Playable{
		Source:     domain.SourceSpotify,
		ID:         track.ID,
		Title:      track.Title,
		Creator:    track.Creator(),
		URI:        track.URI,
		PreviewURL: track.PreviewURL,
		Duration:   track.Duration,
		Preview:    !wantFullAudio,
	}
}

func videoPlayable(video domain.YouTubeVideo) domain.Playable {
	return domain.Playable{
		Source:   domain.SourceYouTube,
		ID:       video.ID,
		Title:    video.Title,
		Creator:  video.Channel,
		URI:      video.URI,
		Duration: video.Duration,
	}
}
