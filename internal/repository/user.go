package repository

import (
	"context"

	"studygeni/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user record and returns the stored row.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns a user by email, including the password hash for
	// credential checks. Callers must not expose the hash.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
