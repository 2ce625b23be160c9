package models

import "time"

// User is the stored identity record. PasswordHash is a bcrypt hash; the
// plaintext password is never stored.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
