package core

import "context"

// Player is the contract the dispatcher expects of the playback bridge.
// Every call is synchronous and independent; a failure leaves the room
// in whatever state the bridge reached.
type Player interface {
	// Global actions span every room (pauseall, ...).
	Global(ctx context.Context, action string) error

	// Room actions target a single room. Segments are joined into the
	// action path, e.g. "spotify", "now", uri.
	Room(ctx context.Context, room string, segments ...string) error
}

// Catalog resolves multi-track references into ordered track lists.
type Catalog interface {
	AlbumTracks(ctx context.Context, uri string) (*Tracklist, error)
	ArtistTopTracks(ctx context.Context, uri string) (*Tracklist, error)
	PlaylistTracks(ctx context.Context, owner, uri string) (*Tracklist, error)
}
