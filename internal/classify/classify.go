// Package classify maps raw scanned tokens to commands.
package classify

import (
	"strings"

	"github.com/tessro/qrocodile/internal/core"
)

// Token prefixes printed on cards.
const (
	PrefixChangeZone = "changezone:"
	PrefixCommand    = "cmd:"
	PrefixMode       = "mode:"
	PrefixLibrary    = "lib:"

	PrefixSpotify         = "spotify:"
	PrefixSpotifyAlbum    = "spotify:album:"
	PrefixSpotifyArtist   = "spotify:artist:"
	PrefixSpotifyUser     = "spotify:user:"
	spotifyPlaylistMarker = ":playlist:"
)

// rule pairs a prefix with the constructor applied to the matching token.
// build returns nil when the token has the prefix but cannot form a valid
// command; such tokens are Unrecognized rather than falling through.
type rule struct {
	prefix string
	build  func(token string) core.Command
}

// rules are evaluated in order and the first matching prefix wins. The
// order matters: spotify:album: and spotify:user: must precede the
// catch-all spotify: rule.
var rules = []rule{
	{PrefixChangeZone, changeRoom},
	{PrefixCommand, command},
	{PrefixMode, mode},
	{PrefixSpotifyAlbum, func(t string) core.Command { return core.RemoteAlbum{URI: t} }},
	{PrefixSpotifyArtist, func(t string) core.Command { return core.RemoteArtist{URI: t} }},
	{PrefixSpotifyUser, playlist},
	{PrefixSpotify, func(t string) core.Command { return core.RemoteTrack{URI: t} }},
	{PrefixLibrary, library},
}

// Classify maps a token to exactly one command. It never fails: tokens
// matching no rule are returned as core.Unrecognized.
func Classify(raw string) core.Command {
	token := strings.TrimSpace(raw)
	for _, r := range rules {
		if !strings.HasPrefix(token, r.prefix) {
			continue
		}
		if cmd := r.build(token); cmd != nil {
			return cmd
		}
		break
	}
	return core.Unrecognized{Raw: token}
}

func changeRoom(token string) core.Command {
	room := strings.TrimSpace(strings.TrimPrefix(token, PrefixChangeZone))
	if room == "" {
		return nil
	}
	return core.ChangeRoom{Room: room}
}

func command(token string) core.Command {
	name := strings.TrimPrefix(token, PrefixCommand)
	if name == "" {
		return nil
	}
	if core.IsReservedModeName(name) {
		m, _ := core.ParseMode(name)
		return core.SetMode{Mode: m}
	}
	return core.SimpleAction{Name: name}
}

func mode(token string) core.Command {
	m, ok := core.ParseMode(strings.TrimPrefix(token, PrefixMode))
	if !ok {
		return nil
	}
	return core.SetMode{Mode: m}
}

// playlist handles spotify:user:<owner>:playlist:<id>.
func playlist(token string) core.Command {
	if !strings.Contains(token, spotifyPlaylistMarker) {
		return nil
	}
	rest := strings.TrimPrefix(token, PrefixSpotifyUser)
	owner, _, _ := strings.Cut(rest, ":")
	if owner == "" {
		return nil
	}
	return core.RemotePlaylist{Owner: owner, URI: token}
}

func library(token string) core.Command {
	hash := strings.TrimPrefix(token, PrefixLibrary)
	if hash == "" {
		return nil
	}
	return core.LibraryTrack{Hash: hash}
}
