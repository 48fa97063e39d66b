package core

import "strings"

// Mode governs how a single track reference is realized.
type Mode int

const (
	// ModeSongImmediate plays the scanned song right away.
	ModeSongImmediate Mode = iota
	// ModeAlbumImmediate plays the whole album the scanned song belongs to.
	ModeAlbumImmediate
	// ModeBuildQueue appends scanned songs to the room queue.
	ModeBuildQueue
)

// Reserved mode names as printed on mode cards.
const (
	ModeNameSongOnly   = "songonly"
	ModeNameWholeAlbum = "wholealbum"
	ModeNameBuildQueue = "buildqueue"
)

func (m Mode) String() string {
	switch m {
	case ModeSongImmediate:
		return ModeNameSongOnly
	case ModeAlbumImmediate:
		return ModeNameWholeAlbum
	case ModeBuildQueue:
		return ModeNameBuildQueue
	default:
		return "unknown"
	}
}

// ParseMode maps a reserved mode name or short alias to a Mode.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(name) {
	case ModeNameSongOnly, "song":
		return ModeSongImmediate, true
	case ModeNameWholeAlbum, "album":
		return ModeAlbumImmediate, true
	case ModeNameBuildQueue, "queue":
		return ModeBuildQueue, true
	}
	return 0, false
}

// IsReservedModeName reports whether name is one of the mode card names
// that take precedence over a plain cmd: action.
func IsReservedModeName(name string) bool {
	switch strings.ToLower(name) {
	case ModeNameSongOnly, ModeNameWholeAlbum, ModeNameBuildQueue:
		return true
	}
	return false
}
