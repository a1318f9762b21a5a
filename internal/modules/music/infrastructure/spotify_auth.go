package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/tathaha/aiode/internal/modules/music/application/ports"
	"github.com/tathaha/aiode/internal/modules/music/domain"
)

// userTokenCacheSize bounds the number of user authorizations kept in memory.
const userTokenCacheSize = 1024

// SpotifyConfig contains Spotify application credentials.
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// SpotifyAuthorizer hands out credential-scoped sessions. The anonymous
// scope uses the client-credentials grant; user scopes use tokens collected
// through the authorization-code flow and kept in a bounded cache.
type SpotifyAuthorizer struct {
	config SpotifyConfig
	auth   *spotifyauth.Authenticator
	creds  *clientcredentials.Config

	mu     sync.Mutex
	tokens *lru.Cache[snowflake.ID, *oauth2.Token]
}

// NewSpotifyAuthorizer creates a new SpotifyAuthorizer.
func NewSpotifyAuthorizer(config SpotifyConfig) (*SpotifyAuthorizer, error) {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client credentials are not set", domain.ErrConfiguration)
	}

	auth := spotifyauth.New(
		spotifyauth.WithRedirectURL(config.RedirectURL),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserLibraryRead,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
		spotifyauth.WithClientID(config.ClientID),
		spotifyauth.WithClientSecret(config.ClientSecret),
	)

	tokens, err := lru.New[snowflake.ID, *oauth2.Token](userTokenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cache: %w", err)
	}

	return &SpotifyAuthorizer{
		config: config,
		auth:   auth,
		creds: &clientcredentials.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenURL:     spotifyauth.TokenURL,
		},
		tokens: tokens,
	}, nil
}

var _ ports.SpotifyAuthorizer = (*SpotifyAuthorizer)(nil)

// Anonymous returns a session backed by the client-credentials grant. The
// underlying token source refreshes the app token transparently.
func (a *SpotifyAuthorizer) Anonymous(ctx context.Context) (ports.SpotifySession, error) {
	token, err := a.creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: could not obtain application token: %v", domain.ErrAuthorization, err)
	}

	client := spotify.New(spotifyauth.New(
		spotifyauth.WithClientID(a.config.ClientID),
		spotifyauth.WithClientSecret(a.config.ClientSecret),
	).Client(ctx, token))

	return &spotifySession{client: client}, nil
}

// ForUser returns a session backed by the user's stored authorization. A
// missing authorization is an error; it never falls back to anonymous scope.
func (a *SpotifyAuthorizer) ForUser(ctx context.Context, userID snowflake.ID) (ports.SpotifySession, error) {
	a.mu.Lock()
	token, ok := a.tokens.Get(userID)
	a.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: no Spotify authorization for this user, log in first", domain.ErrAuthorization)
	}

	fresh := token
	if !token.Valid() {
		var err error
		fresh, err = a.auth.RefreshToken(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("%w: stored Spotify authorization could not be refreshed: %v", domain.ErrAuthorization, err)
		}
		a.StoreToken(userID, fresh)
	}

	return &spotifySession{
		client:     spotify.New(a.auth.Client(ctx, fresh)),
		userScoped: true,
	}, nil
}

// StoreToken records a user's authorization, typically from the OAuth
// callback. Older entries are displaced when the cache is full.
func (a *SpotifyAuthorizer) StoreToken(userID snowflake.ID, token *oauth2.Token) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens.Add(userID, token)
}

// AuthURL returns the authorization-code URL a user must visit to grant
// access. state should uniquely identify the user's login attempt.
func (a *SpotifyAuthorizer) AuthURL(state string) string {
	return a.auth.AuthURL(state)
}

// Exchange turns an authorization code into a token and stores it for the
// user.
func (a *SpotifyAuthorizer) Exchange(ctx context.Context, userID snowflake.ID, code string) error {
	token, err := a.auth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: authorization code exchange failed: %v", domain.ErrAuthorization, err)
	}
	a.StoreToken(userID, token)
	return nil
}
