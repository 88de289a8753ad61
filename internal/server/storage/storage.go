// Package storage opens the durable user store behind a DSN and applies
// schema migrations. PostgreSQL serves production deployments; a plain file
// path selects an embedded SQLite database for local runs.
package storage

import (
	"context"
	"strings"

	"github.com/avolkovs/todolist/internal/server/users"
)

// Store gives access to the per-aggregate repositories backed by one
// database handle.
type Store interface {
	Users() users.Repository
	Close() error
}

// Open dispatches on the DSN: "postgres://" or "postgresql://" URLs open a
// PostgreSQL store, anything else is treated as a SQLite file path.
// Migrations run before the store is returned.
func Open(ctx context.Context, dsn string) (Store, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresStore(ctx, dsn)
	}
	return NewSQLiteStore(ctx, dsn)
}
