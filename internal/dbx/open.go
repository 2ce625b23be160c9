package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
	_ "modernc.org/sqlite"
)

// Dialect names the SQL flavour behind a connection. The values match the
// dialect names goose expects.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

var ErrEmptyDSN = errors.New("empty dsn")

// ParseDSN maps a DSN to the database/sql driver name, the dialect and the
// DSN the driver expects. "sqlite:" and "file:" select SQLite (the
// "sqlite:" prefix is stripped); everything else goes to pgx.
func ParseDSN(dsn string) (driver string, dialect Dialect, driverDSN string, err error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "", "", "", ErrEmptyDSN
	case strings.HasPrefix(dsn, "sqlite:"):
		return "sqlite", DialectSQLite, strings.TrimPrefix(dsn, "sqlite:"), nil
	case strings.HasPrefix(dsn, "file:"):
		return "sqlite", DialectSQLite, dsn, nil
	default:
		return "pgx", DialectPostgres, dsn, nil
	}
}

// DefaultBackoff is used by Open to wait for a database that is still
// starting: 6 attempts, exponential from 250ms.
func DefaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(5, retry.NewExponential(250*time.Millisecond))
}

// Open opens dsn and pings it, retrying the ping according to backoff.
// SQLite connections are limited to one so in-memory databases are shared.
func Open(ctx context.Context, dsn string, backoff retry.Backoff) (*sql.DB, Dialect, error) {
	driver, dialect, driverDSN, err := ParseDSN(dsn)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(driver, driverDSN)
	if err != nil {
		return nil, "", fmt.Errorf("db open error: %w", err)
	}

	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("db ping error: %w", err)
	}

	return db, dialect, nil
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// Rebind rewrites $N placeholders into the form the dialect's driver
// understands. PostgreSQL queries are returned unchanged.
func Rebind(dialect Dialect, query string) string {
	if dialect == DialectSQLite {
		return placeholderRe.ReplaceAllString(query, "?$1")
	}
	return query
}
