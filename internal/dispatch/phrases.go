package dispatch

import (
	"fmt"
	"strings"

	"github.com/tessro/qrocodile/internal/core"
)

// Spoken phrases.
const (
	PhraseGreeting  = "Hello, I'm qrocodile."
	PhraseLoading   = "Please give me a moment to gather my thoughts."
	PhraseReady     = "I'm ready now!"
	PhraseShowCard  = "Show me a card!"
	PhraseTurntable = "I've activated the turntable"
	PhraseUnknown   = "Hmm, I don't recognize that command"
	PhraseCatalog   = "Sorry, I couldn't find that in the catalog"
)

// Simple actions with dispatcher-side meaning.
const (
	AliasWhatSong  = "whatsong"
	AliasWhatNext  = "whatnext"
	AliasTurntable = "turntable"
)

func modePhrase(m core.Mode) string {
	switch m {
	case core.ModeAlbumImmediate:
		return "Show me a card and I'll play the whole album"
	case core.ModeBuildQueue:
		return "Show me a card and I'll add that song to the list"
	default:
		return "Show me a card and I'll play that song right away"
	}
}

func roomPhrase(room string) string {
	return fmt.Sprintf("I'm switching to the %s", strings.ToLower(room))
}
