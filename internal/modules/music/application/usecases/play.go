package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

const (
	// maxSearchResults caps candidate sets offered for disambiguation.
	maxSearchResults = 10

	// promptTTL is how long a pending disambiguation prompt stays valid.
	promptTTL = 15 * time.Minute

	// localResolveConcurrency bounds concurrent provider lookups when
	// refreshing stale local list items.
	localResolveConcurrency = 4
)

// PlayResultKind classifies what a play invocation ended in.
type PlayResultKind int

const (
	// PlayQueued means the queue was replaced and playback started.
	PlayQueued PlayResultKind = iota
	// PlayResumed means paused or stopped playback was resumed in place.
	PlayResumed
	// PlayNotice means the search returned nothing; informational, not an error.
	PlayNotice
	// PlayPrompted means the resolution is suspended awaiting a user choice.
	PlayPrompted
)

// PlayOutput is the terminal result of a play invocation or a prompt
// selection.
type PlayOutput struct {
	Kind PlayResultKind

	// Queued holds the batch that replaced the queue, for PlayQueued.
	Queued domain.Batch
	// ListName names the collection the batch came from, empty for a lone
	// track or video.
	ListName string
	// Prompt is the pending prompt, for PlayPrompted.
	Prompt *domain.Prompt
	// Notice is the informational message, for PlayNotice.
	Notice string
}

// SelectInput carries a user's answer to a pending disambiguation prompt.
type SelectInput struct {
	GuildID               snowflake.ID
	UserID                snowflake.ID
	NotificationChannelID snowflake.ID
	PromptID              string
	Index                 int
}

// PlayService is the resolution orchestrator: it interprets the request's
// modifier flags, dispatches the matching provider search under the right
// credential scope, drives normalization and disambiguation, and hands the
// result to the audio gateway.
type PlayService struct {
	auth    ports.SpotifyAuthorizer
	video   ports.VideoSearcher
	lists   ports.LocalListStore
	voice   ports.VoiceStateProvider
	prompts ports.PromptStore
	gateway AudioGateway
}

// NewPlayService creates a new PlayService.
func NewPlayService(
	auth ports.SpotifyAuthorizer,
	video ports.VideoSearcher,
	lists ports.LocalListStore,
	voice ports.VoiceStateProvider,
	prompts ports.PromptStore,
	gateway AudioGateway,
) *PlayService {
	return &PlayService{
		auth:    auth,
		video:   video,
		lists:   lists,
		voice:   voice,
		prompts: prompts,
		gateway: gateway,
	}
}

// Play resolves a play request into exactly one terminal outcome: queued and
// playing, a no-results notice or error, or a suspended prompt. promptID
// identifies the invocation so a later selection can be matched to it.
func (s *PlayService) Play(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
) (*PlayOutput, error) {
	if err := validateFlags(req.Flags); err != nil {
		return nil, err
	}

	// A new play command supersedes any prompt still pending for this user.
	s.prompts.Invalidate(domain.PromptKey{GuildID: req.GuildID, UserID: req.UserID})

	if !req.HasBody() {
		if req.Flags.List {
			return nil, fmt.Errorf("%w: specify the name of the list to play", domain.ErrInvalidArgument)
		}
		return s.resumeInPlace(ctx, req)
	}

	switch {
	case req.Flags.List && req.Flags.Spotify:
		return s.playSpotifyList(ctx, promptID, req)
	case req.Flags.List && req.Flags.Youtube:
		return s.playVideoPlaylist(ctx, promptID, req)
	case req.Flags.List:
		return s.playLocalList(ctx, promptID, req)
	case req.Flags.Youtube:
		return s.playVideo(ctx, promptID, req)
	default:
		return s.playSpotifyTrack(ctx, promptID, req)
	}
}

// Select completes a resolution that was suspended on a disambiguation
// prompt. The chosen candidate is re-normalized under the original request's
// flags; the voice channel is resolved fresh, never taken from the prompt.
func (s *PlayService) Select(ctx context.Context, input SelectInput) (*PlayOutput, error) {
	key := domain.PromptKey{GuildID: input.GuildID, UserID: input.UserID}

	// A selection on a superseded select-menu must not consume the prompt
	// that is actually pending, so the store is only cleared once the
	// incoming selection is matched against the stored prompt.
	prompt := s.prompts.Get(key)
	if prompt == nil || prompt.ID != input.PromptID {
		return nil, domain.ErrPromptExpired
	}
	if prompt.Expired(promptTTL, time.Now()) {
		s.prompts.Invalidate(key)
		return nil, domain.ErrPromptExpired
	}

	choice := prompt.Candidate(input.Index)
	if choice == nil {
		return nil, domain.ErrPromptExpired
	}
	s.prompts.Invalidate(key)

	req := domain.PlayRequest{
		Flags:                 prompt.Flags,
		GuildID:               input.GuildID,
		UserID:                input.UserID,
		NotificationChannelID: input.NotificationChannelID,
	}

	expanded, err := s.expand(ctx, req, choice)
	if err != nil {
		return nil, err
	}

	outcome := Normalize([]domain.Match{expanded}, req.Flags.WantFullAudio())
	return s.queueBatch(ctx, req, outcome.Batch, collectionName(expanded))
}

// resumeInPlace handles the empty-body branch: unpause if paused, restart
// the current queue item if any, otherwise fail.
func (s *PlayService) resumeInPlace(ctx context.Context, req domain.PlayRequest) (*PlayOutput, error) {
	if s.gateway.IsPaused(req.GuildID) {
		if err := s.gateway.Unpause(ctx, req.GuildID); err != nil {
			return nil, err
		}
		return &PlayOutput{Kind: PlayResumed}, nil
	}

	if !s.gateway.IsQueueEmpty(req.GuildID) {
		channelID, err := s.requireVoiceChannel(req.GuildID, req.UserID)
		if err != nil {
			return nil, err
		}
		if err := s.gateway.PlayCurrent(ctx, req.GuildID, channelID); err != nil {
			return nil, err
		}
		return &PlayOutput{Kind: PlayResumed}, nil
	}

	return nil, fmt.Errorf("%w: specify a track you want to play", domain.ErrEmptyQueue)
}

func (s *PlayService) playSpotifyTrack(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
) (*PlayOutput, error) {
	session, err := s.spotifySession(ctx, req.UserID, req.Flags.Own)
	if err != nil {
		return nil, err
	}

	var tracks []domain.SpotifyTrack
	if req.Flags.Own {
		tracks, err = session.SearchOwnTracks(ctx, req.Body, maxSearchResults)
	} else {
		tracks, err = session.SearchTracks(ctx, req.Body, maxSearchResults)
	}
	if err != nil {
		return nil, fmt.Errorf("track search failed: %w", err)
	}

	matches := make([]domain.Match, len(tracks))
	for i, track := range tracks {
		matches[i] = track
	}
	return s.dispatch(ctx, promptID, req, matches)
}

func (s *PlayService) playSpotifyList(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
) (*PlayOutput, error) {
	session, err := s.spotifySession(ctx, req.UserID, req.Flags.Own)
	if err != nil {
		return nil, err
	}

	var playlists []domain.SpotifyPlaylist
	if req.Flags.Own {
		playlists, err = session.SearchOwnPlaylists(ctx, req.Body, maxSearchResults)
	} else {
		playlists, err = session.SearchPlaylists(ctx, req.Body, maxSearchResults)
	}
	if err != nil {
		return nil, fmt.Errorf("playlist search failed: %w", err)
	}

	matches := make([]domain.Match, len(playlists))
	for i, playlist := range playlists {
		matches[i] = playlist
	}
	return s.dispatch(ctx, promptID, req, matches)
}

func (s *PlayService) playVideo(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
) (*PlayOutput, error) {
	if req.Flags.Limit > 0 {
		videos, err := s.video.SearchVideos(ctx, req.Flags.Limit, req.Body)
		if err != nil {
			return nil, fmt.Errorf("video search failed: %w", err)
		}
		matches := make([]domain.Match, len(videos))
		for i, video := range videos {
			matches[i] = video
		}
		return s.dispatch(ctx, promptID, req, matches)
	}

	video, err := s.video.SearchVideo(ctx, req.Body)
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}
	if video == nil {
		return s.dispatch(ctx, promptID, req, nil)
	}
	return s.dispatch(ctx, promptID, req, []domain.Match{*video})
}

func (s *PlayService) playVideoPlaylist(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
) (*PlayOutput, error) {
	if req.Flags.Limit > 0 {
		playlists, err := s.video.SearchPlaylists(ctx, req.Flags.Limit, req.Body)
		if err != nil {
			return nil, fmt.Errorf("video playlist search failed: %w", err)
		}
		matches := make([]domain.Match, len(playlists))
		for i, playlist := range playlists {
			matches[i] = playlist
		}
		return s.dispatch(ctx, promptID, req, matches)
	}

	playlist, err := s.video.SearchPlaylist(ctx, req.Body)
	if err != nil {
		return nil, fmt.Errorf("video playlist search failed: %w", err)
	}
	if playlist == nil {
		return s.dispatch(ctx, promptID, req, nil)
	}
	return s.dispatch(ctx, promptID, req, []domain.Match{*playlist})
}

func (s *PlayService) playLocalList(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
) (*PlayOutput, error) {
	list, err := s.lists.Lookup(ctx, req.GuildID, req.Body)
	if err != nil {
		return nil, fmt.Errorf("local list lookup failed: %w", err)
	}
	if list == nil {
		return nil, fmt.Errorf("%w: no local list found for %q", domain.ErrInvalidArgument, req.Body)
	}
	return s.dispatch(ctx, promptID, req, []domain.Match{*list})
}

// dispatch feeds matches through the normalizer and acts on the outcome:
// empty is a soft notice, a single match is queued, multiple matches suspend
// the request on a prompt. A lone collection match is resolved to its full
// member list before normalization.
func (s *PlayService) dispatch(
	ctx context.Context,
	promptID string,
	req domain.PlayRequest,
	matches []domain.Match,
) (*PlayOutput, error) {
	if len(matches) == 1 {
		expanded, err := s.expand(ctx, req, matches[0])
		if err != nil {
			return nil, err
		}
		matches[0] = expanded
	}

	outcome := Normalize(matches, req.Flags.WantFullAudio())

	switch outcome.Kind {
	case domain.OutcomeEmpty:
		return &PlayOutput{Kind: PlayNotice, Notice: "No results found"}, nil

	case domain.OutcomeAmbiguous:
		prompt := &domain.Prompt{
			ID:         promptID,
			Key:        domain.PromptKey{GuildID: req.GuildID, UserID: req.UserID},
			Candidates: outcome.Candidates,
			Flags:      req.Flags,
			CreatedAt:  time.Now(),
		}
		s.prompts.Put(prompt)
		return &PlayOutput{Kind: PlayPrompted, Prompt: prompt}, nil

	default:
		return s.queueBatch(ctx, req, outcome.Batch, collectionName(matches[0]))
	}
}

// expand resolves a lone collection match into its full member list. A
// resolved collection with zero playable members is a hard error, unlike a
// search that found no collections at all. Spotify playlist members are
// fetched under the request's credential scope: a private own-library
// playlist is only visible to the user session.
func (s *PlayService) expand(
	ctx context.Context,
	req domain.PlayRequest,
	match domain.Match,
) (domain.Match, error) {
	switch m := match.(type) {
	case domain.SpotifyPlaylist:
		if m.Resolved() {
			return m, nil
		}
		session, err := s.spotifySession(ctx, req.UserID, req.Flags.Own)
		if err != nil {
			return nil, err
		}
		tracks, err := session.PlaylistTracks(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve playlist tracks: %w", err)
		}
		if len(tracks) == 0 {
			return nil, fmt.Errorf("%w: playlist %s has no tracks", domain.ErrNoResults, m.Name)
		}
		m.Tracks = tracks
		return m, nil

	case domain.YouTubePlaylist:
		if m.Resolved() {
			return m, nil
		}
		videos, err := s.video.PlaylistVideos(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve playlist videos: %w", err)
		}
		if len(videos) == 0 {
			return nil, fmt.Errorf("%w: playlist %s has no videos", domain.ErrNoResults, m.Title)
		}
		m.Videos = videos
		return m, nil

	case domain.LocalList:
		items, err := s.resolveLocalItems(ctx, m)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: list %s is empty", domain.ErrNoResults, m.Name)
		}
		m.Items = items
		return m, nil

	default:
		return match, nil
	}
}

// resolveLocalItems refreshes stale list items against the provider. Items
// that still cache a playable URI pass through untouched; Spotify items
// without one are re-fetched concurrently under anonymous credentials.
// Members that cannot be resolved are dropped silently.
func (s *PlayService) resolveLocalItems(
	ctx context.Context,
	list domain.LocalList,
) ([]domain.LocalItem, error) {
	resolved := make([]domain.LocalItem, len(list.Items))

	var session ports.SpotifySession
	for _, item := range list.Items {
		if item.URI == "" && item.Source == domain.SourceSpotify && item.ID != "" {
			var err error
			session, err = s.auth.Anonymous(ctx)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(localResolveConcurrency)

	for i, item := range list.Items {
		i, item := i, item
		if item.URI != "" {
			resolved[i] = item
			continue
		}
		if item.Source != domain.SourceSpotify || item.ID == "" || session == nil {
			continue
		}

		group.Go(func() error {
			track, err := session.Track(groupCtx, item.ID)
			if err != nil || track == nil {
				// Unresolvable member, skipped.
				return nil
			}
			resolved[i] = domain.LocalItem{
				Source:     domain.SourceSpotify,
				ID:         track.ID,
				Title:      track.Title,
				Creator:    track.Creator(),
				URI:        track.URI,
				PreviewURL: track.PreviewURL,
				Duration:   track.Duration,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	items := make([]domain.LocalItem, 0, len(resolved))
	for _, item := range resolved {
		if item.URI != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

// queueBatch resolves the requester's voice channel fresh and hands the
// batch to the audio gateway.
func (s *PlayService) queueBatch(
	ctx context.Context,
	req domain.PlayRequest,
	batch domain.Batch,
	listName string,
) (*PlayOutput, error) {
	channelID, err := s.requireVoiceChannel(req.GuildID, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.ReplaceAndPlay(ctx, req.GuildID, channelID, req.NotificationChannelID, batch); err != nil {
		return nil, err
	}

	return &PlayOutput{Kind: PlayQueued, Queued: batch, ListName: listName}, nil
}

func (s *PlayService) requireVoiceChannel(guildID, userID snowflake.ID) (snowflake.ID, error) {
	channelID, err := s.voice.UserVoiceChannel(guildID, userID)
	if err != nil || channelID == nil {
		return 0, domain.ErrNoVoiceChannel
	}
	return *channelID, nil
}

func (s *PlayService) spotifySession(
	ctx context.Context,
	userID snowflake.ID,
	own bool,
) (ports.SpotifySession, error) {
	if own {
		return s.auth.ForUser(ctx, userID)
	}
	return s.auth.Anonymous(ctx)
}

// validateFlags rejects invalid flag combinations before any provider call.
func validateFlags(flags domain.Flags) error {
	if flags.Spotify && flags.Youtube {
		return fmt.Errorf("%w: spotify and youtube are mutually exclusive", domain.ErrConfiguration)
	}
	if flags.Own && !flags.Spotify {
		return fmt.Errorf("%w: own requires spotify", domain.ErrConfiguration)
	}
	if flags.Local && !flags.List {
		return fmt.Errorf("%w: local requires list", domain.ErrConfiguration)
	}
	if flags.Limit != 0 {
		if !flags.Youtube {
			return fmt.Errorf("%w: limit requires youtube", domain.ErrConfiguration)
		}
		if flags.Limit < 1 || flags.Limit > 10 {
			return fmt.Errorf("%w: limit must be between 1 and 10", domain.ErrInvalidArgument)
		}
	}
	return nil
}

// collectionName returns the display name when the match is a collection.
func collectionName(match domain.Match) string {
	switch m := match.(type) {
	case domain.SpotifyPlaylist:
		return m.Name
	case domain.YouTubePlaylist:
		return m.Title
	case domain.LocalList:
		return m.Name
	default:
		return ""
	}
}
