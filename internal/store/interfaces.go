package store

import (
	"context"

	"github.com/mlevkov/go-auth-keeper/models"
)

// UserRepository is the durable record of users keyed by unique email.
// Implementations must enforce email uniqueness with a storage-level
// constraint so that concurrent creates cannot both succeed, and must
// linearize conflicting updates to the same user (last write wins).
type UserRepository interface {
	// Create inserts a new user with the given normalized email and
	// password hash. Returns [ErrEmailAlreadyRegistered] if a user with
	// that email already exists.
	Create(ctx context.Context, email string, hashedPassword []byte) (models.User, error)

	// FindByEmail returns the user with the given normalized email.
	// Returns [ErrUserNotFound] if none matches.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindBySessionToken returns the user holding the given session token.
	// Returns [ErrUserNotFound] if none matches.
	FindBySessionToken(ctx context.Context, token string) (models.User, error)

	// FindByResetToken returns the user holding the given reset token.
	// Returns [ErrUserNotFound] if none matches.
	FindByResetToken(ctx context.Context, token string) (models.User, error)

	// Update applies a partial update to the user with the given id.
	// Fields absent from the update are left untouched; a set-to-NULL
	// field clears the column. Returns [ErrUserNotFound] if the id does
	// not exist and [ErrNoFieldsToUpdate] if the update is empty.
	Update(ctx context.Context, userID int64, update models.UserUpdate) error
}
