package core

// Source indicates where a track reference resolves.
type Source string

const (
	SourceSpotify Source = "spotify"
	SourceLibrary Source = "library"
)

// TrackRef is one playable entry of an expanded album, artist, or playlist.
type TrackRef struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	URI    string `json:"uri"`
	Source Source `json:"source"`
}

// IsFirst reports whether the track starts playback rather than joining the queue.
func (t TrackRef) IsFirst() bool {
	return t.Index == 1
}
