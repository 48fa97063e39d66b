// Package source produces raw card tokens for the dispatcher.
package source

import (
	"context"
)

// Source is a pull iterator over scanned tokens. Next blocks until a
// token is available and returns io.EOF once a finite source is drained.
// Close releases the underlying resource and is safe to call twice.
type Source interface {
	Next(ctx context.Context) (string, error)
	Close() error
}
