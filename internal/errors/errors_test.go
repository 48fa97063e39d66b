package errors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
)

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "explicit suggestion wins",
			err:  WithSuggestion(ErrRoomNotFound, "try the kitchen"),
			want: "try the kitchen",
		},
		{
			name: "wrapped catalog error",
			err:  fmt.Errorf("expand album: %w", ErrCatalogNotConfigured),
			want: "Set spotify.client_id and spotify.client_secret in ~/.qrocodilerc or via QROCODILE_SPOTIFY_CLIENT_ID",
		},
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:5005: connect: connection refused"),
			want: "Check that node-sonos-http-api is running and reachable on the configured host",
		},
		{
			name: "unknown",
			err:  errors.New("something odd"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetSuggestion(tt.err); got != tt.want {
				t.Errorf("GetSuggestion() = %q, want %q", got, tt.want)
			}
		})
	}
}

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }
func (timeoutError) Temporary() bool { return true }

func TestFromTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"timeout", &net.OpError{Op: "dial", Err: timeoutError{}}, ErrTimeout},
		{"refused", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, ErrNetworkError},
		{"plain", errors.New("EOF"), ErrNetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTransport(tt.err)
			if !errors.Is(got, tt.want) {
				t.Errorf("FromTransport() = %v, want %v", got, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("FromTransport() = %v, lost the original error", got)
			}
		})
	}

	if FromTransport(nil) != nil {
		t.Error("FromTransport(nil) != nil")
	}
}

func TestFormat(t *testing.T) {
	got := Format(ErrInstanceRunning)
	if !strings.HasPrefix(got, "Error: another dispatcher is already running") {
		t.Errorf("Format() = %q, missing error text", got)
	}
	if !strings.Contains(got, "Suggestion: ") {
		t.Errorf("Format() = %q, missing suggestion", got)
	}

	if got := Format(errors.New("plain")); got != "Error: plain" {
		t.Errorf("Format() = %q, want %q", got, "Error: plain")
	}
}

func TestPartialResult(t *testing.T) {
	var p PartialResult[int]

	if p.HasErrors() {
		t.Error("HasErrors() = true for empty result")
	}
	if p.Err() != nil {
		t.Errorf("Err() = %v, want nil", p.Err())
	}

	p.AddError(nil)
	if p.HasErrors() {
		t.Error("AddError(nil) recorded an error")
	}

	first := errors.New("first")
	p.AddError(first)
	if got := p.ErrorSummary(); got != "first" {
		t.Errorf("ErrorSummary() = %q, want %q", got, "first")
	}

	p.AddError(errors.New("second"))
	if !strings.HasPrefix(p.ErrorSummary(), "2 errors occurred:") {
		t.Errorf("ErrorSummary() = %q", p.ErrorSummary())
	}
	if !errors.Is(p.Err(), first) {
		t.Error("Err() does not wrap the first error")
	}
}
