package users

import (
	"context"

	"github.com/dmitrijs2005/eventauth/internal/server/models"
)

// Repository stores identity records keyed by email.
//
// Create is a single atomic insert-or-conflict: when a record with the same
// email already exists it returns common.ErrorAlreadyExists and stores
// nothing. GetUserByEmail returns common.ErrorNotFound for unknown emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
