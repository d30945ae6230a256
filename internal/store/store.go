// internal/store/store.go
//
// Persistence for solving sessions.
// Backends:
//   - memory: map guarded by a RWMutex (default).
//   - sqlite: durable, single-node (mattn/go-sqlite3).
//   - redis:  shared between replicas, sessions expire after a TTL.

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/session"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for solving sessions.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend    string        // memory | sqlite | redis
	SQLitePath string        // file path for sqlite
	RedisURL   string        // redis://host:port/db
	SessionTTL time.Duration // redis key expiry; 0 keeps keys forever
}

// Open builds the backend named by opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(opts.SQLitePath)
	case "redis":
		return NewRedisStore(opts.RedisURL, opts.SessionTTL)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}
