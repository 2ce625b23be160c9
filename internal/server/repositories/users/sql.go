package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventauth/internal/common"
	"github.com/dmitrijs2005/eventauth/internal/dbx"
	"github.com/dmitrijs2005/eventauth/internal/server/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLRepository keeps identities in the event_users table. The same queries
// run on PostgreSQL and SQLite; placeholders are rebound per dialect.
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query :=
		`INSERT INTO event_users (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, dbx.Rebind(r.dialect, query),
		user.ID, user.UserName, user.Email, user.PasswordHash, user.CreatedAt).Scan(&user.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isEmailUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, password_hash, created_at FROM event_users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, dbx.Rebind(r.dialect, query), email).
		Scan(&user.ID, &user.UserName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// isEmailUniqueViolation catches the PostgreSQL unique_violation raised on
// the email constraint. ON CONFLICT already covers the common case; this
// handles constraints added outside the migrations.
func isEmailUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(strings.ToLower(pgErr.ConstraintName), "email")
}
