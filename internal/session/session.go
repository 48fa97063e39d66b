// Package session holds the dispatcher's mutable state and its on-disk
// room record.
package session

import (
	"github.com/tessro/qrocodile/internal/core"
)

// Session is the dispatcher's view of where and how to play. It is owned
// by a single goroutine and needs no locking.
type Session struct {
	Room      string
	Mode      core.Mode
	LastToken string
}

// New creates a session targeting room in song-immediate mode.
func New(room string) *Session {
	return &Session{
		Room: room,
		Mode: core.ModeSongImmediate,
	}
}

// IsRepeat reports whether raw is the token processed last.
func (s *Session) IsRepeat(raw string) bool {
	return s.LastToken != "" && raw == s.LastToken
}

// StartRoom picks the room a dispatcher starts in. An explicit override
// wins, then the persisted record, then the configured default.
func StartRoom(override, stored, configured string) string {
	switch {
	case override != "":
		return override
	case stored != "":
		return stored
	default:
		return configured
	}
}
