package sonos

// Global actions.
const (
	ActionPauseAll = "pauseall"
)

// Room actions and action path segments understood by the bridge.
const (
	ActionPlay       = "play"
	ActionPause      = "pause"
	ActionClearQueue = "clearqueue"
	ActionShuffle    = "shuffle"
	ActionSay        = "say"
	ActionSaySong    = "saysong"
	ActionSayNext    = "saynext"
	ActionLineIn     = "linein"

	ShuffleOn  = "on"
	ShuffleOff = "off"

	SegmentSpotify = "spotify"
	SpotifyNow     = "now"
	SpotifyQueue   = "queue"

	SegmentMusicSearch  = "musicsearch"
	SegmentLibrary      = "library"
	LibraryPlaySong     = "playsongfromhash"
	LibraryPlayAlbum    = "playalbumfromhash"
	LibraryQueueSong    = "queuesongfromhash"
	LibraryLoadIfNeeded = "loadifneeded"
)

// Spotify returns the segments for spotify/<how>/<uri>.
func Spotify(how, uri string) []string {
	return []string{SegmentSpotify, how, uri}
}

// Library returns the segments for musicsearch/library/<action>[/<arg>].
func Library(action string, args ...string) []string {
	return append([]string{SegmentMusicSearch, SegmentLibrary, action}, args...)
}

// Shuffle returns the segments for shuffle/on or shuffle/off.
func Shuffle(on bool) []string {
	if on {
		return []string{ActionShuffle, ShuffleOn}
	}
	return []string{ActionShuffle, ShuffleOff}
}
