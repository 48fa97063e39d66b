// Package catalog resolves streaming albums, artists, and playlists into
// ordered track lists.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tessro/qrocodile/internal/core"
	"github.com/tessro/qrocodile/internal/spotify/client"
)

// Catalog implements core.Catalog for Spotify.
type Catalog struct {
	client *client.Client
	market string
	logger *zap.Logger
}

// New creates a catalog that looks tracks up for the given market.
func New(c *client.Client, market string, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{client: c, market: market, logger: logger}
}

// AlbumTracks returns an album's tracks in album order.
func (c *Catalog) AlbumTracks(ctx context.Context, uri string) (*core.Tracklist, error) {
	id, err := client.ResourceID(uri, "album")
	if err != nil {
		return nil, err
	}

	album, err := c.client.GetAlbum(ctx, id, c.market)
	if err != nil {
		return nil, fmt.Errorf("get album %s: %w", id, err)
	}

	tracks, err := c.client.GetAlbumTracks(ctx, id, c.market)
	if err != nil {
		return nil, fmt.Errorf("get album tracks %s: %w", id, err)
	}

	list := &core.Tracklist{
		Name:   album.Name,
		Artist: firstArtist(album.Artists),
		Tracks: convertTracks(tracks),
	}
	list.Renumber()

	c.logger.Debug("resolved album",
		zap.String("uri", uri),
		zap.String("name", list.Name),
		zap.Int("tracks", list.Len()))
	return list, nil
}

// ArtistTopTracks returns an artist's top tracks for the catalog market.
func (c *Catalog) ArtistTopTracks(ctx context.Context, uri string) (*core.Tracklist, error) {
	id, err := client.ResourceID(uri, "artist")
	if err != nil {
		return nil, err
	}

	artist, err := c.client.GetArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get artist %s: %w", id, err)
	}

	tracks, err := c.client.GetArtistTopTracks(ctx, id, c.market)
	if err != nil {
		return nil, fmt.Errorf("get top tracks %s: %w", id, err)
	}

	list := &core.Tracklist{
		Name:   artist.Name,
		Artist: artist.Name,
		Tracks: convertTracks(tracks),
	}
	list.Renumber()

	c.logger.Debug("resolved artist",
		zap.String("uri", uri),
		zap.String("name", list.Name),
		zap.Int("tracks", list.Len()))
	return list, nil
}

// PlaylistTracks returns a playlist's tracks in playlist order, skipping
// local files and entries that are no longer available.
func (c *Catalog) PlaylistTracks(ctx context.Context, owner, uri string) (*core.Tracklist, error) {
	id, err := client.ResourceID(uri, "playlist")
	if err != nil {
		return nil, err
	}

	playlist, err := c.client.GetPlaylist(ctx, id, c.market)
	if err != nil {
		return nil, fmt.Errorf("get playlist %s: %w", id, err)
	}
	if owner != "" && playlist.Owner.ID != "" && playlist.Owner.ID != owner {
		c.logger.Debug("playlist owner differs from card",
			zap.String("card_owner", owner),
			zap.String("owner", playlist.Owner.ID))
	}

	items, err := c.client.GetPlaylistItems(ctx, id, c.market)
	if err != nil {
		return nil, fmt.Errorf("get playlist items %s: %w", id, err)
	}

	tracks := make([]client.Track, 0, len(items))
	for _, item := range items {
		if item.IsLocal || item.Track == nil {
			continue
		}
		tracks = append(tracks, *item.Track)
	}

	list := &core.Tracklist{
		Name:   playlist.Name,
		Artist: playlist.Owner.DisplayName,
		Tracks: convertTracks(tracks),
	}
	list.Renumber()

	c.logger.Debug("resolved playlist",
		zap.String("uri", uri),
		zap.String("name", list.Name),
		zap.Int("tracks", list.Len()))
	return list, nil
}

// convertTracks converts playable Spotify tracks to track refs. Indexes
// are left for the caller to assign.
func convertTracks(tracks []client.Track) []core.TrackRef {
	refs := make([]core.TrackRef, 0, len(tracks))
	for i := range tracks {
		if ref := convertTrack(&tracks[i]); ref != nil {
			refs = append(refs, *ref)
		}
	}
	return refs
}

// convertTrack converts a Spotify track to a track ref, or nil when the
// track cannot be played from the catalog.
func convertTrack(t *client.Track) *core.TrackRef {
	if t == nil || t.URI == "" || t.IsLocal {
		return nil
	}
	if t.IsPlayable != nil && !*t.IsPlayable {
		return nil
	}

	return &core.TrackRef{
		Title:  t.Name,
		URI:    t.URI,
		Source: core.SourceSpotify,
	}
}

func firstArtist(artists []client.Artist) string {
	if len(artists) == 0 {
		return ""
	}
	return artists[0].Name
}

// Ensure Catalog implements core.Catalog
var _ core.Catalog = (*Catalog)(nil)
