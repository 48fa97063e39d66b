package sonos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	qerrors "github.com/tessro/qrocodile/internal/errors"
)

// recorder is a fake bridge that remembers the raw request URIs it saw.
type recorder struct {
	mu     sync.Mutex
	paths  []string
	status int
	body   string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.paths = append(r.paths, req.URL.EscapedPath())
	status, body := r.status, r.body
	r.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (r *recorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newTestClient(t *testing.T, rec *recorder) *Client {
	t.Helper()
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second, zaptest.NewLogger(t))
}

func TestRoomPath(t *testing.T) {
	tests := []struct {
		name     string
		room     string
		segments []string
		want     string
	}{
		{
			name:     "simple action",
			room:     "Kitchen",
			segments: []string{"playpause"},
			want:     "/Kitchen/playpause",
		},
		{
			name:     "room with space",
			room:     "Living Room",
			segments: []string{ActionClearQueue},
			want:     "/Living%20Room/clearqueue",
		},
		{
			name:     "spotify uri keeps colons",
			room:     "Dining Room",
			segments: Spotify(SpotifyNow, "spotify:track:4LI1ykYGFCcXPWkrpcU7hn"),
			want:     "/Dining%20Room/spotify/now/spotify:track:4LI1ykYGFCcXPWkrpcU7hn",
		},
		{
			name:     "spoken phrase",
			room:     "Kitchen",
			segments: []string{ActionSay, "Show me a card!"},
			want:     "/Kitchen/say/Show%20me%20a%20card%21",
		},
		{
			name:     "line in source",
			room:     "Kitchen",
			segments: []string{ActionLineIn, "Dining Room"},
			want:     "/Kitchen/linein/Dining%20Room",
		},
		{
			name:     "library hash",
			room:     "Kitchen",
			segments: Library(LibraryPlaySong, "abc123"),
			want:     "/Kitchen/musicsearch/library/playsongfromhash/abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoomPath(tt.room, tt.segments...); got != tt.want {
				t.Errorf("RoomPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientRequests(t *testing.T) {
	rec := &recorder{body: `{"status":"success"}`}
	c := newTestClient(t, rec)
	ctx := context.Background()

	if err := c.Global(ctx, ActionPauseAll); err != nil {
		t.Fatalf("Global() error = %v", err)
	}
	if err := c.Room(ctx, "Living Room", Shuffle(false)...); err != nil {
		t.Fatalf("Room() error = %v", err)
	}

	want := []string{"/pauseall", "/Living%20Room/shuffle/off"}
	got := rec.seen()
	if len(got) != len(want) {
		t.Fatalf("requests = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("request[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClientStatusError(t *testing.T) {
	rec := &recorder{status: http.StatusInternalServerError, body: "boom"}
	c := newTestClient(t, rec)

	err := c.Room(context.Background(), "Kitchen", ActionPlay)
	if err == nil {
		t.Fatal("Room() error = nil, want error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Room() error = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
	if statusErr.Path != "/Kitchen/play" {
		t.Errorf("Path = %q, want %q", statusErr.Path, "/Kitchen/play")
	}
}

func TestClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewClient(server.URL, 20*time.Millisecond, nil)
	err := c.Global(context.Background(), ActionPauseAll)
	if !errors.Is(err, qerrors.ErrTimeout) {
		t.Errorf("Global() error = %v, want ErrTimeout", err)
	}
}

func TestClientUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClient(url, time.Second, nil)
	err := c.Global(context.Background(), ActionPauseAll)
	if !errors.Is(err, qerrors.ErrNetworkError) {
		t.Errorf("Global() error = %v, want ErrNetworkError", err)
	}
}

func TestZones(t *testing.T) {
	rec := &recorder{body: `[
		{
			"uuid": "RINCON_1",
			"coordinator": {"uuid": "RINCON_1", "roomName": "Living Room", "state": {"playbackState": "PLAYING"}},
			"members": [
				{"uuid": "RINCON_1", "roomName": "Living Room"},
				{"uuid": "RINCON_2", "roomName": "Kitchen"}
			]
		},
		{
			"uuid": "RINCON_3",
			"coordinator": {"uuid": "RINCON_3", "roomName": "Dining Room", "state": {"playbackState": "STOPPED"}},
			"members": [{"uuid": "RINCON_3", "roomName": "Dining Room"}]
		}
	]`}
	c := newTestClient(t, rec)

	zones, err := c.Zones(context.Background())
	if err != nil {
		t.Fatalf("Zones() error = %v", err)
	}
	if len(zones) != 2 {
		t.Fatalf("len(zones) = %d, want 2", len(zones))
	}
	if zones[0].Coordinator != "Living Room" || zones[0].State != "PLAYING" {
		t.Errorf("zones[0] = %+v", zones[0])
	}
	if !zones[0].HasRoom("Kitchen") {
		t.Error("zones[0].HasRoom(Kitchen) = false, want true")
	}

	if got, ok := FindRoom(zones, "kitchen"); !ok || got != "Kitchen" {
		t.Errorf("FindRoom(kitchen) = %q, %v; want Kitchen, true", got, ok)
	}
	if _, ok := FindRoom(zones, "Garage"); ok {
		t.Error("FindRoom(Garage) = true, want false")
	}
}

func TestParseZonesInvalid(t *testing.T) {
	if _, err := parseZones([]byte("not json")); err == nil {
		t.Error("parseZones() error = nil, want error")
	}
}
