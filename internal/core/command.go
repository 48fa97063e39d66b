package core

import "fmt"

// Kind names a command family.
type Kind string

const (
	KindSimpleAction   Kind = "simple_action"
	KindChangeRoom     Kind = "change_room"
	KindSetMode        Kind = "set_mode"
	KindLibraryTrack   Kind = "library_track"
	KindRemoteTrack    Kind = "remote_track"
	KindRemoteAlbum    Kind = "remote_album"
	KindRemoteArtist   Kind = "remote_artist"
	KindRemotePlaylist Kind = "remote_playlist"
	KindUnrecognized   Kind = "unrecognized"
)

// Command is the classified form of a scanned token.
// The set of implementations is closed; switch on the concrete type.
type Command interface {
	Kind() Kind
	String() string
	command()
}

// SimpleAction is a named room action without an argument (playpause, next, ...).
type SimpleAction struct {
	Name string
}

// ChangeRoom switches the active target room.
type ChangeRoom struct {
	Room string
}

// SetMode switches the playback mode.
type SetMode struct {
	Mode Mode
}

// LibraryTrack references a locally indexed track by content hash.
type LibraryTrack struct {
	Hash string
}

// RemoteTrack references a single streaming track.
type RemoteTrack struct {
	URI string
}

// RemoteAlbum references a streaming album.
type RemoteAlbum struct {
	URI string
}

// RemoteArtist references a streaming artist.
type RemoteArtist struct {
	URI string
}

// RemotePlaylist references a user-owned streaming playlist.
type RemotePlaylist struct {
	Owner string
	URI   string
}

// Unrecognized is the fallback for tokens no rule matched.
type Unrecognized struct {
	Raw string
}

func (SimpleAction) Kind() Kind   { return KindSimpleAction }
func (ChangeRoom) Kind() Kind     { return KindChangeRoom }
func (SetMode) Kind() Kind        { return KindSetMode }
func (LibraryTrack) Kind() Kind   { return KindLibraryTrack }
func (RemoteTrack) Kind() Kind    { return KindRemoteTrack }
func (RemoteAlbum) Kind() Kind    { return KindRemoteAlbum }
func (RemoteArtist) Kind() Kind   { return KindRemoteArtist }
func (RemotePlaylist) Kind() Kind { return KindRemotePlaylist }
func (Unrecognized) Kind() Kind   { return KindUnrecognized }

func (c SimpleAction) String() string   { return fmt.Sprintf("SimpleAction(%s)", c.Name) }
func (c ChangeRoom) String() string     { return fmt.Sprintf("ChangeRoom(%s)", c.Room) }
func (c SetMode) String() string        { return fmt.Sprintf("SetMode(%s)", c.Mode) }
func (c LibraryTrack) String() string   { return fmt.Sprintf("LibraryTrack(%s)", c.Hash) }
func (c RemoteTrack) String() string    { return fmt.Sprintf("RemoteTrack(%s)", c.URI) }
func (c RemoteAlbum) String() string    { return fmt.Sprintf("RemoteAlbum(%s)", c.URI) }
func (c RemoteArtist) String() string   { return fmt.Sprintf("RemoteArtist(%s)", c.URI) }
func (c RemotePlaylist) String() string { return fmt.Sprintf("RemotePlaylist(%s, %s)", c.Owner, c.URI) }
func (c Unrecognized) String() string   { return fmt.Sprintf("Unrecognized(%s)", c.Raw) }

func (SimpleAction) command()   {}
func (ChangeRoom) command()     {}
func (SetMode) command()        {}
func (LibraryTrack) command()   {}
func (RemoteTrack) command()    {}
func (RemoteAlbum) command()    {}
func (RemoteArtist) command()   {}
func (RemotePlaylist) command() {}
func (Unrecognized) command()   {}
