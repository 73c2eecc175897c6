package domain

import (
	"context"
	"time"
)

// User represents a registered member of the board.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Repository[User, int64]
	// FindByUsername returns the single user with the given username,
	// or ErrNotFound.
	FindByUsername(ctx context.Context, username string) (*User, error)
}
