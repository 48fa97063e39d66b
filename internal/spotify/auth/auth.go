package auth

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// SpotifyTokenURL is the Spotify token endpoint.
	SpotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// Config holds the client-credentials configuration. Catalog lookups
// (albums, artists, playlists) need no user scope.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Timeout      time.Duration
}

// NewConfig creates a new configuration with defaults.
func NewConfig(clientID, clientSecret string) *Config {
	return &Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     SpotifyTokenURL,
		Timeout:      30 * time.Second,
	}
}

// TokenSource returns a caching token source that fetches a new access
// token whenever the current one expires.
func (c *Config) TokenSource(ctx context.Context) oauth2.TokenSource {
	cc := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The token endpoint gets the same bounded timeout as API calls.
	httpClient := &http.Client{Timeout: c.Timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	return cc.TokenSource(ctx)
}
