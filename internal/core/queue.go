package core

// Tracklist is the ordered result of expanding a multi-track reference.
type Tracklist struct {
	Name   string     `json:"name"`
	Artist string     `json:"artist"`
	Tracks []TrackRef `json:"tracks"`
}

// Len returns the number of tracks.
func (l *Tracklist) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Tracks)
}

// IsEmpty returns true if the list has no tracks.
func (l *Tracklist) IsEmpty() bool {
	return l.Len() == 0
}

// Renumber assigns indexes 1..n in iteration order, discarding whatever
// numbering the source reported.
func (l *Tracklist) Renumber() {
	if l == nil {
		return
	}
	for i := range l.Tracks {
		l.Tracks[i].Index = i + 1
	}
}
