package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/eventauth/internal/dbx"
	"github.com/dmitrijs2005/eventauth/internal/server/migrations"
	"github.com/dmitrijs2005/eventauth/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// SQLRepositoryManager vends SQL-backed repositories over one connection
// pool and applies the embedded migrations with goose.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect dbx.Dialect
	users   *users.SQLRepository
}

func NewSQLRepositoryManager(db *sql.DB, dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{
		db:      db,
		dialect: dialect,
		users:   users.NewSQLRepository(db, dialect),
	}
}

func (m *SQLRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SQLRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for the manager's dialect.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(string(m.dialect)); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}
