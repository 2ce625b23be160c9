// Package repomanager selects and owns the identity store backend: a SQL
// database (PostgreSQL or SQLite) or an in-process map.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/eventauth/internal/dbx"
	"github.com/dmitrijs2005/eventauth/internal/server/repositories/users"
	"github.com/sethvargo/go-retry"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Users() users.Repository
	Close() error
}

// New returns a SQL-backed manager for a non-empty dsn and an in-memory one
// otherwise. Connecting is retried according to backoff.
func New(ctx context.Context, dsn string, backoff retry.Backoff) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}

	db, dialect, err := dbx.Open(ctx, dsn, backoff)
	if err != nil {
		return nil, err
	}
	return NewSQLRepositoryManager(db, dialect), nil
}
