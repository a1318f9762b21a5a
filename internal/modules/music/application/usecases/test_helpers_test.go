package usecases

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

func mockSpotifyTrack(id string) domain.SpotifyTrack {
	return domain.SpotifyTrack{
		ID:         id,
		Title:      "Track " + id,
		Artists:    []string{"Artist"},
		Album:      "Album",
		URI:        "spotify:track:" + id,
		PreviewURL: "https://p.scdn.co/" + id,
		Duration:   3 * time.Minute,
	}
}

func mockVideo(id string) domain.YouTubeVideo {
	return domain.YouTubeVideo{
		ID:       id,
		Title:    "Video " + id,
		Channel:  "Channel",
		URI:      "https://www.youtube.com/watch?v=" + id,
		Duration: 4 * time.Minute,
	}
}

type mockSession struct {
	tracks       []domain.SpotifyTrack
	ownTracks    []domain.SpotifyTrack
	playlists    []domain.SpotifyPlaylist
	ownPlaylists []domain.SpotifyPlaylist

	playlistTracks map[string][]domain.SpotifyTrack
	trackByID      map[string]*domain.SpotifyTrack

	searchErr error

	searchCalls int
}

func (m *mockSession) SearchTracks(_ context.Context, _ string, _ int) ([]domain.SpotifyTrack, error) {
	m.searchCalls++
	return m.tracks, m.searchErr
}

func (m *mockSession) SearchOwnTracks(_ context.Context, _ string, _ int) ([]domain.SpotifyTrack, error) {
	m.searchCalls++
	return m.ownTracks, m.searchErr
}

func (m *mockSession) SearchPlaylists(_ context.Context, _ string, _ int) ([]domain.SpotifyPlaylist, error) {
	m.searchCalls++
	return m.playlists, m.searchErr
}

func (m *mockSession) SearchOwnPlaylists(_ context.Context, _ string, _ int) ([]domain.SpotifyPlaylist, error) {
	m.searchCalls++
	return m.ownPlaylists, m.searchErr
}

func (m *mockSession) PlaylistTracks(_ context.Context, playlistID string) ([]domain.SpotifyTrack, error) {
	return m.playlistTracks[playlistID], nil
}

func (m *mockSession) Track(_ context.Context, trackID string) (*domain.SpotifyTrack, error) {
	return m.trackByID[trackID], nil
}

type mockAuthorizer struct {
	anonymous    *mockSession
	user         *mockSession
	anonymousErr error
	userErr      error

	userCalls int
}

func (m *mockAuthorizer) Anonymous(_ context.Context) (ports.SpotifySession, error) {
	if m.anonymousErr != nil {
		return nil, m.anonymousErr
	}
	return m.anonymous, nil
}

func (m *mockAuthorizer) ForUser(_ context.Context, _ snowflake.ID) (ports.SpotifySession, error) {
	m.userCalls++
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.user, nil
}

type mockVideoSearcher struct {
	video     *domain.YouTubeVideo
	videos    []domain.YouTubeVideo
	playlist  *domain.YouTubePlaylist
	playlists []domain.YouTubePlaylist

	playlistVideos map[string][]domain.YouTubeVideo

	searchErr error

	searchCalls int
	multiCalls  int
}

func (m *mockVideoSearcher) SearchVideo(_ context.Context, _ string) (*domain.YouTubeVideo, error) {
	m.searchCalls++
	return m.video, m.searchErr
}

func (m *mockVideoSearcher) SearchVideos(_ context.Context, _ int, _ string) ([]domain.YouTubeVideo, error) {
	m.multiCalls++
	return m.videos, m.searchErr
}

func (m *mockVideoSearcher) SearchPlaylist(_ context.Context, _ string) (*domain.YouTubePlaylist, error) {
	m.searchCalls++
	return m.playlist, m.searchErr
}

func (m *mockVideoSearcher) SearchPlaylists(_ context.Context, _ int, _ string) ([]domain.YouTubePlaylist, error) {
	m.multiCalls++
	return m.playlists, m.searchErr
}

func (m *mockVideoSearcher) PlaylistVideos(_ context.Context, playlistID string) ([]domain.YouTubeVideo, error) {
	return m.playlistVideos[playlistID], nil
}

type mockListStore struct {
	lists     map[string]*domain.LocalList
	lookupErr error
}

func (m *mockListStore) Lookup(_ context.Context, _ snowflake.ID, name string) (*domain.LocalList, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.lists[name], nil
}

func (m *mockListStore) Create(_ context.Context, _ snowflake.ID, name string, items []domain.LocalItem) (*domain.LocalList, error) {
	list := &domain.LocalList{Name: name, Items: items}
	if m.lists == nil {
		m.lists = make(map[string]*domain.LocalList)
	}
	m.lists[name] = list
	return list, nil
}

func (m *mockListStore) Delete(_ context.Context, _ snowflake.ID, name string) error {
	if _, ok := m.lists[name]; !ok {
		return domain.ErrInvalidArgument
	}
	delete(m.lists, name)
	return nil
}

func (m *mockListStore) Names(_ context.Context, _ snowflake.ID) ([]string, error) {
	names := make([]string, 0, len(m.lists))
	for name := range m.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

type mockVoiceState struct {
	channels map[snowflake.ID]snowflake.ID // userID -> channelID
	err      error
}

func (m *mockVoiceState) UserVoiceChannel(_, userID snowflake.ID) (*snowflake.ID, error) {
	if m.err != nil {
		return nil, m.err
	}
	channelID, ok := m.channels[userID]
	if !ok {
		return nil, nil
	}
	return &channelID, nil
}

type mockPromptStore struct {
	prompts map[domain.PromptKey]*domain.Prompt

	invalidated []domain.PromptKey
}

func newMockPromptStore() *mockPromptStore {
	return &mockPromptStore{prompts: make(map[domain.PromptKey]*domain.Prompt)}
}

func (m *mockPromptStore) Put(prompt *domain.Prompt) {
	m.prompts[prompt.Key] = prompt
}

func (m *mockPromptStore) Get(key domain.PromptKey) *domain.Prompt {
	return m.prompts[key]
}

func (m *mockPromptStore) Invalidate(key domain.PromptKey) {
	m.invalidated = append(m.invalidated, key)
	delete(m.prompts, key)
}

type mockGateway struct {
	paused     bool
	queueEmpty bool

	replaceErr error
	currentErr error
	unpauseErr error

	replacedBatch   domain.Batch
	replacedVoice   snowflake.ID
	replacedChannel snowflake.ID
	replaceCalls    int
	currentCalls    int
	unpauseCalls    int
}

func (m *mockGateway) ReplaceAndPlay(_ context.Context, _ snowflake.ID, voiceChannelID, notificationChannelID snowflake.ID, batch domain.Batch) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaceCalls++
	m.replacedBatch = batch
	m.replacedVoice = voiceChannelID
	m.replacedChannel = notificationChannelID
	return nil
}

func (m *mockGateway) PlayCurrent(_ context.Context, _ snowflake.ID, voiceChannelID snowflake.ID) error {
	if m.currentErr != nil {
		return m.currentErr
	}
	m.currentCalls++
	m.replacedVoice = voiceChannelID
	return nil
}

func (m *mockGateway) IsPaused(_ snowflake.ID) bool {
	return m.paused
}

func (m *mockGateway) Unpause(_ context.Context, _ snowflake.ID) error {
	if m.unpauseErr != nil {
		return m.unpauseErr
	}
	m.unpauseCalls++
	m.paused = false
	return nil
}

func (m *mockGateway) IsQueueEmpty(_ snowflake.ID) bool {
	return m.queueEmpty
}

func (m *mockGateway) Pause(_ context.Context, _ snowflake.ID) error {
	m.paused = true
	return nil
}

func (m *mockGateway) Stop(_ context.Context, _ snowflake.ID) error {
	m.queueEmpty = true
	return nil
}

type mockRegistry struct {
	players map[snowflake.ID]*domain.Player
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{players: make(map[snowflake.ID]*domain.Player)}
}

func (m *mockRegistry) Player(guildID snowflake.ID) *domain.Player {
	player, ok := m.players[guildID]
	if !ok {
		player = domain.NewPlayer(guildID)
		m.players[guildID] = player
	}
	return player
}

func (m *mockRegistry) ExistingPlayer(guildID snowflake.ID) *domain.Player {
	return m.players[guildID]
}

type mockAudioPlayer struct {
	mu sync.Mutex

	playErr   error
	stopErr   error
	pauseErr  error
	resumeErr error

	played     []domain.Playable
	stopCalls  int
	pauseCalls int
}

func (m *mockAudioPlayer) Play(_ context.Context, _ snowflake.ID, playable domain.Playable) error {
	if m.playErr != nil {
		return m.playErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.played = append(m.played, playable)
	return nil
}

func (m *mockAudioPlayer) playedSnapshot() []domain.Playable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Playable(nil), m.played...)
}

func (m *mockAudioPlayer) Stop(_ context.Context, _ snowflake.ID) error {
	if m.stopErr != nil {
		return m.stopErr
	}
	m.stopCalls++
	return nil
}

func (m *mockAudioPlayer) Pause(_ context.Context, _ snowflake.ID) error {
	if m.pauseErr != nil {
		return m.pauseErr
	}
	m.pauseCalls++
	return nil
}

func (m *mockAudioPlayer) Resume(_ context.Context, _ snowflake.ID) error {
	return m.resumeErr
}

type mockVoiceConnection struct {
	mu sync.Mutex

	joinErr  error
	leaveErr error

	joined []snowflake.ID
	left   []snowflake.ID
}

func (m *mockVoiceConnection) JoinChannel(_ context.Context, _, channelID snowflake.ID) error {
	if m.joinErr != nil {
		return m.joinErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.joined = append(m.joined, channelID)
	return nil
}

func (m *mockVoiceConnection) LeaveChannel(_ context.Context, guildID snowflake.ID) error {
	if m.leaveErr != nil {
		return m.leaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.left = append(m.left, guildID)
	return nil
}

type mockNotifier struct {
	nowPlayingErr error

	nowPlaying []domain.Playable
	errors     []string
}

func (m *mockNotifier) SendNowPlaying(_ snowflake.ID, playable domain.Playable) error {
	if m.nowPlayingErr != nil {
		return m.nowPlayingErr
	}
	m.nowPlaying = append(m.nowPlaying, playable)
	return nil
}

func (m *mockNotifier) SendError(_ snowflake.ID, message string) error {
	m.errors = append(m.errors, message)
	return nil
}

type playFixture struct {
	auth    *mockAuthorizer
	video   *mockVideoSearcher
	lists   *mockListStore
	voice   *mockVoiceState
	prompts *mockPromptStore
	gateway *mockGateway

	service *PlayService
}

func newPlayFixture() *playFixture {
	f := &playFixture{
		auth:    &mockAuthorizer{anonymous: &mockSession{}, user: &mockSession{}},
		video:   &mockVideoSearcher{},
		lists:   &mockListStore{},
		voice:   &mockVoiceState{channels: map[snowflake.ID]snowflake.ID{snowflake.ID(200): snowflake.ID(300)}},
		prompts: newMockPromptStore(),
		gateway: &mockGateway{queueEmpty: true},
	}
	f.service = NewPlayService(f.auth, f.video, f.lists, f.voice, f.prompts, f.gateway)
	return f
}
