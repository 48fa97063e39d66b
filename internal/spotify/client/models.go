package client

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// ExternalURLs contains external URLs for a resource.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Paging is an offset-paged list. Next is empty on the last page.
type Paging[T any] struct {
	Href   string `json:"href"`
	Items  []T    `json:"items"`
	Limit  int    `json:"limit"`
	Next   string `json:"next"`
	Offset int    `json:"offset"`
	Total  int    `json:"total"`
}

// Track represents a Spotify track.
type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URI          string       `json:"uri"`
	Href         string       `json:"href"`
	Type         string       `json:"type"`
	DurationMS   int          `json:"duration_ms"`
	Explicit     bool         `json:"explicit"`
	IsPlayable   *bool        `json:"is_playable"` // Only present with a market
	IsLocal      bool         `json:"is_local"`
	TrackNumber  int          `json:"track_number"`
	DiscNumber   int          `json:"disc_number"`
	Popularity   int          `json:"popularity"`
	Artists      []Artist     `json:"artists"`
	Album        *Album       `json:"album,omitempty"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Artist represents a Spotify artist.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	URI          string       `json:"uri"`
	Href         string       `json:"href"`
	Type         string       `json:"type"`
	Genres       []string     `json:"genres,omitempty"`
	Images       []Image      `json:"images,omitempty"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Album represents a Spotify album. Tracks is only populated by the
// album endpoint, and only with the first page.
type Album struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	URI          string         `json:"uri"`
	Href         string         `json:"href"`
	AlbumType    string         `json:"album_type"`
	TotalTracks  int            `json:"total_tracks"`
	ReleaseDate  string         `json:"release_date"`
	Images       []Image        `json:"images"`
	Artists      []Artist       `json:"artists"`
	Tracks       *Paging[Track] `json:"tracks,omitempty"`
	ExternalURLs ExternalURLs   `json:"external_urls"`
}

// TopTracksResponse is the response from the artist top-tracks endpoint.
type TopTracksResponse struct {
	Tracks []Track `json:"tracks"`
}

// PlaylistItem is one entry of a playlist. Track is nil for entries that
// were removed from the catalog.
type PlaylistItem struct {
	AddedAt string `json:"added_at"`
	IsLocal bool   `json:"is_local"`
	Track   *Track `json:"track"`
}

// Playlist represents a Spotify playlist.
type Playlist struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	URI          string               `json:"uri"`
	Href         string               `json:"href"`
	Description  string               `json:"description"`
	Public       bool                 `json:"public"`
	Images       []Image              `json:"images"`
	Owner        User                 `json:"owner"`
	Tracks       Paging[PlaylistItem] `json:"tracks"`
	ExternalURLs ExternalURLs         `json:"external_urls"`
}

// User represents a Spotify user profile.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	URI         string `json:"uri"`
}
