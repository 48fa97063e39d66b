package classify

import (
	"testing"

	"github.com/tessro/qrocodile/internal/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  core.Command
	}{
		{
			name:  "change zone",
			token: "changezone:Living Room",
			want:  core.ChangeRoom{Room: "Living Room"},
		},
		{
			name:  "simple action",
			token: "cmd:playpause",
			want:  core.SimpleAction{Name: "playpause"},
		},
		{
			name:  "legacy room card",
			token: "cmd:livingroom",
			want:  core.SimpleAction{Name: "livingroom"},
		},
		{
			name:  "cmd with reserved mode name",
			token: "cmd:buildqueue",
			want:  core.SetMode{Mode: core.ModeBuildQueue},
		},
		{
			name:  "cmd whole album",
			token: "cmd:wholealbum",
			want:  core.SetMode{Mode: core.ModeAlbumImmediate},
		},
		{
			name:  "mode prefix",
			token: "mode:songonly",
			want:  core.SetMode{Mode: core.ModeSongImmediate},
		},
		{
			name:  "mode alias",
			token: "mode:queue",
			want:  core.SetMode{Mode: core.ModeBuildQueue},
		},
		{
			name:  "unknown mode",
			token: "mode:karaoke",
			want:  core.Unrecognized{Raw: "mode:karaoke"},
		},
		{
			name:  "album",
			token: "spotify:album:1DFixLWuPkv3KT3TnV35m3",
			want:  core.RemoteAlbum{URI: "spotify:album:1DFixLWuPkv3KT3TnV35m3"},
		},
		{
			name:  "artist",
			token: "spotify:artist:3WrFJ7ztbogyGnTHbHJFl2",
			want:  core.RemoteArtist{URI: "spotify:artist:3WrFJ7ztbogyGnTHbHJFl2"},
		},
		{
			name:  "user playlist",
			token: "spotify:user:alice:playlist:37i9dQZF1DX0XUsuxWHRQd",
			want: core.RemotePlaylist{
				Owner: "alice",
				URI:   "spotify:user:alice:playlist:37i9dQZF1DX0XUsuxWHRQd",
			},
		},
		{
			name:  "user without playlist",
			token: "spotify:user:alice",
			want:  core.Unrecognized{Raw: "spotify:user:alice"},
		},
		{
			name:  "track",
			token: "spotify:track:4LI1ykYGFCcXPWkrpcU7hn",
			want:  core.RemoteTrack{URI: "spotify:track:4LI1ykYGFCcXPWkrpcU7hn"},
		},
		{
			name:  "other spotify form is a track",
			token: "spotify:episode:abc",
			want:  core.RemoteTrack{URI: "spotify:episode:abc"},
		},
		{
			name:  "library hash",
			token: "lib:d41d8cd98f00b204e9800998ecf8427e",
			want:  core.LibraryTrack{Hash: "d41d8cd98f00b204e9800998ecf8427e"},
		},
		{
			name:  "surrounding whitespace",
			token: "  spotify:track:abc \n",
			want:  core.RemoteTrack{URI: "spotify:track:abc"},
		},
		{
			name:  "empty library hash",
			token: "lib:",
			want:  core.Unrecognized{Raw: "lib:"},
		},
		{
			name:  "empty room",
			token: "changezone:",
			want:  core.Unrecognized{Raw: "changezone:"},
		},
		{
			name:  "garbage",
			token: "https://example.com",
			want:  core.Unrecognized{Raw: "https://example.com"},
		},
		{
			name:  "empty",
			token: "",
			want:  core.Unrecognized{Raw: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.token)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	tokens := []string{
		"cmd:next",
		"spotify:user:bob:playlist:xyz",
		"lib:abc",
		"mode:album",
		"???",
	}

	for _, token := range tokens {
		first := Classify(token)
		for i := 0; i < 5; i++ {
			if got := Classify(token); got != first {
				t.Errorf("Classify(%q) run %d = %v, want %v", token, i, got, first)
			}
		}
	}
}

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		token string
		want  core.Kind
	}{
		{"changezone:Kitchen", core.KindChangeRoom},
		{"cmd:whatsong", core.KindSimpleAction},
		{"cmd:songonly", core.KindSetMode},
		{"spotify:album:x", core.KindRemoteAlbum},
		{"spotify:artist:x", core.KindRemoteArtist},
		{"spotify:user:o:playlist:x", core.KindRemotePlaylist},
		{"spotify:track:x", core.KindRemoteTrack},
		{"lib:x", core.KindLibraryTrack},
		{"nope", core.KindUnrecognized},
	}

	for _, tt := range tests {
		if got := Classify(tt.token).Kind(); got != tt.want {
			t.Errorf("Classify(%q).Kind() = %q, want %q", tt.token, got, tt.want)
		}
	}
}
