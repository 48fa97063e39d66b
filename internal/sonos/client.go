package sonos

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tessro/qrocodile/internal/core"
	qerrors "github.com/tessro/qrocodile/internal/errors"
)

// Client sends actions to a node-sonos-http-api bridge. Each call is a
// single GET; responses are read and logged but not interpreted.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a bridge client rooted at baseURL (http://host:5005).
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the bridge root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Global performs an action across every room, e.g. pauseall.
func (c *Client) Global(ctx context.Context, action string) error {
	_, err := c.call(ctx, GlobalPath(action))
	return err
}

// Room performs an action on a single room. Segments form the action
// path; each one is escaped individually.
func (c *Client) Room(ctx context.Context, room string, segments ...string) error {
	_, err := c.call(ctx, RoomPath(room, segments...))
	return err
}

// GlobalPath builds /<action>.
func GlobalPath(action string) string {
	return "/" + url.PathEscape(action)
}

// RoomPath builds /<room>/<segment>/<segment>..., escaping spaces and
// other reserved characters in every segment.
func RoomPath(room string, segments ...string) string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(url.PathEscape(room))
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// call performs GET baseURL+path and returns the body.
func (c *Client) call(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	c.logger.Debug("bridge request", zap.String("url", fullURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bridge request %s: %w", path, qerrors.FromTransport(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("bridge response",
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("body", body),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}

// StatusError is returned when the bridge answers with a non-2xx status.
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bridge error (status %d) for %s", e.StatusCode, e.Path)
	}
	return fmt.Sprintf("bridge error (status %d) for %s: %s", e.StatusCode, e.Path, e.Body)
}

// Ensure Client implements core.Player
var _ core.Player = (*Client)(nil)
