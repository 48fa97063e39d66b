package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	albumTracksPageSize    = 50
	playlistTracksPageSize = 100
	maxPages               = 50
)

// ResourceID extracts the id of a Spotify URI of the given type, e.g.
// ResourceID("spotify:album:xyz", "album") == "xyz". Legacy playlist URIs
// (spotify:user:<owner>:playlist:<id>) resolve with type "playlist".
func ResourceID(uri, resourceType string) (string, error) {
	parts := strings.Split(uri, ":")
	if len(parts) < 3 || parts[0] != "spotify" {
		return "", fmt.Errorf("invalid spotify uri: %q", uri)
	}
	for i := 1; i < len(parts)-1; i++ {
		if parts[i] == resourceType && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("spotify uri %q is not a %s", uri, resourceType)
}

// GetAlbum returns an album together with the first page of its tracks.
func (c *Client) GetAlbum(ctx context.Context, id, market string) (*Album, error) {
	params := map[string]string{}
	if market != "" {
		params["market"] = market
	}

	var album Album
	if err := c.Get(ctx, BuildURL("/albums/"+url.PathEscape(id), params), &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// GetAlbumTracks returns every track of an album in album order.
func (c *Client) GetAlbumTracks(ctx context.Context, id, market string) ([]Track, error) {
	params := map[string]string{
		"limit": strconv.Itoa(albumTracksPageSize),
	}
	if market != "" {
		params["market"] = market
	}

	return collectPages[Track](ctx, c, BuildURL("/albums/"+url.PathEscape(id)+"/tracks", params))
}

// GetArtist returns an artist profile.
func (c *Client) GetArtist(ctx context.Context, id string) (*Artist, error) {
	var artist Artist
	if err := c.Get(ctx, "/artists/"+url.PathEscape(id), &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetArtistTopTracks returns an artist's current top tracks for a market.
func (c *Client) GetArtistTopTracks(ctx context.Context, id, market string) ([]Track, error) {
	if market == "" {
		return nil, fmt.Errorf("top tracks require a market")
	}

	var resp TopTracksResponse
	path := BuildURL("/artists/"+url.PathEscape(id)+"/top-tracks", map[string]string{"market": market})
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Tracks, nil
}

// GetPlaylist returns playlist details and the first page of its items.
func (c *Client) GetPlaylist(ctx context.Context, id, market string) (*Playlist, error) {
	params := map[string]string{}
	if market != "" {
		params["market"] = market
	}

	var playlist Playlist
	if err := c.Get(ctx, BuildURL("/playlists/"+url.PathEscape(id), params), &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetPlaylistItems returns every item of a playlist in playlist order.
func (c *Client) GetPlaylistItems(ctx context.Context, id, market string) ([]PlaylistItem, error) {
	params := map[string]string{
		"limit": strconv.Itoa(playlistTracksPageSize),
	}
	if market != "" {
		params["market"] = market
	}

	return collectPages[PlaylistItem](ctx, c, BuildURL("/playlists/"+url.PathEscape(id)+"/tracks", params))
}

// collectPages follows "next" links until the last page.
func collectPages[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var items []T
	for page := 0; path != "" && page < maxPages; page++ {
		var p Paging[T]
		if err := c.Get(ctx, path, &p); err != nil {
			return nil, err
		}
		items = append(items, p.Items...)
		path = p.Next
	}
	return items, nil
}
