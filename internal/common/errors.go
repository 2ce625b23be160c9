// Package common defines the sentinel errors shared by the repositories,
// services and transports of the event authentication server. Callers should
// use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorValidation   = errors.New("validation error")
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Login failures. Both are ErrorUnauthorized but carry different
	// messages for the client.
	ErrUserNotRegistered  = fmt.Errorf("user not registered: %w", ErrorUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrorUnauthorized)

	// bcrypt only uses the first 72 bytes of a password.
	ErrPasswordTooLong = fmt.Errorf("password too long: %w", ErrorValidation)

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
