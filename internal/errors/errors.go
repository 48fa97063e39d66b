package errors

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrCatalogNotConfigured = errors.New("catalog access not configured")
	ErrRoomNotFound         = errors.New("room not found")
	ErrEmptyTracklist       = errors.New("no tracks resolved")
	ErrScannerUnavailable   = errors.New("scanner unavailable")
	ErrInstanceRunning      = errors.New("another dispatcher is already running")
	ErrRateLimited          = errors.New("rate limited")
	ErrNetworkError         = errors.New("network error")
	ErrTimeout              = errors.New("request timeout")
	ErrConfigNotFound       = errors.New("config file not found")
	ErrInvalidConfig        = errors.New("invalid configuration")
)

// QrocodileError wraps an error with a user-friendly suggestion.
type QrocodileError struct {
	Err        error
	Suggestion string
}

func (e *QrocodileError) Error() string {
	return e.Err.Error()
}

func (e *QrocodileError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &QrocodileError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var qErr *QrocodileError
	if errors.As(err, &qErr) && qErr.Suggestion != "" {
		return qErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrCatalogNotConfigured) || strings.Contains(errStr, "client_id") {
		return "Set spotify.client_id and spotify.client_secret in ~/.qrocodilerc or via QROCODILE_SPOTIFY_CLIENT_ID"
	}

	if errors.Is(err, ErrRoomNotFound) {
		return "Run 'qrocodile zones' to see the rooms the bridge knows about"
	}

	if errors.Is(err, ErrScannerUnavailable) || strings.Contains(errStr, "zbarcam") {
		return "Install zbar-tools or pass --debug-file to replay tokens from a script"
	}

	if errors.Is(err, ErrInstanceRunning) {
		return "Stop the other dispatcher or point state.dir somewhere else"
	}

	if errors.Is(err, ErrRateLimited) || strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") {
		return "Too many requests. Wait a moment and try again"
	}

	if errors.Is(err, ErrNetworkError) || errors.Is(err, ErrTimeout) ||
		strings.Contains(errStr, "timeout") || strings.Contains(errStr, "connection refused") {
		return "Check that node-sonos-http-api is running and reachable on the configured host"
	}

	if errors.Is(err, ErrConfigNotFound) || errors.Is(err, ErrInvalidConfig) {
		return "Run 'qrocodile config init' to create a configuration file"
	}

	return ""
}

// FromTransport tags a failed HTTP round trip as ErrTimeout or
// ErrNetworkError, keeping the original error in the chain.
func FromTransport(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetworkError, err)
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}

// PartialResult represents a result that may have partial failures.
type PartialResult[T any] struct {
	Data   T
	Errors []error
}

// HasErrors returns true if there were any errors.
func (p *PartialResult[T]) HasErrors() bool {
	return len(p.Errors) > 0
}

// AddError adds an error to the partial result.
func (p *PartialResult[T]) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// Err joins all recorded errors, or returns nil if there were none.
func (p *PartialResult[T]) Err() error {
	return errors.Join(p.Errors...)
}

// ErrorSummary returns a summary of all errors.
func (p *PartialResult[T]) ErrorSummary() string {
	if len(p.Errors) == 0 {
		return ""
	}
	if len(p.Errors) == 1 {
		return p.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors occurred:\n", len(p.Errors)))
	for i, err := range p.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
