package music

// Config holds the music module configuration.
type Config struct {
	LavalinkAddress     string `env:"LAVALINK_ADDRESS,notEmpty"`
	LavalinkPassword    string `env:"LAVALINK_PASSWORD,notEmpty"`
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID,notEmpty"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET,notEmpty"`
	SpotifyRedirectURL  string `env:"SPOTIFY_REDIRECT_URL"`
	YouTubeAPIKey       string `env:"YOUTUBE_API_KEY,notEmpty"`
	DatabasePath        string `env:"DATABASE_PATH" envDefault:"aiode.db"`
}
