package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	qerrors "github.com/tessro/qrocodile/internal/errors"
)

// RoomStore persists the current room as a one-line text record.
type RoomStore struct {
	path string
}

// NewRoomStore creates a store backed by the file at path.
func NewRoomStore(path string) *RoomStore {
	return &RoomStore{path: path}
}

// Load reads the stored room. A missing record yields "" and no error.
func (s *RoomStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read room file: %w", err)
	}

	room, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(room), nil
}

// Save replaces the stored room.
func (s *RoomStore) Save(room string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(room+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write room file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace room file: %w", err)
	}
	return nil
}

// Path returns the path to the room file.
func (s *RoomStore) Path() string {
	return s.path
}

// Lock guards a state directory against a second dispatcher.
type Lock struct {
	path string
	lock *flock.Flock
}

// NewLock creates an unacquired lock at path.
func NewLock(path string) *Lock {
	return &Lock{path: path, lock: flock.New(path)}
}

// Acquire takes the lock without blocking.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	ok, err := l.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return qerrors.WithSuggestion(
			fmt.Errorf("%w (lock %s)", qerrors.ErrInstanceRunning, l.path),
			fmt.Sprintf("Stop the other dispatcher or remove %s if no dispatcher is running", l.path))
	}
	return nil
}

// Release drops the lock if held.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}
