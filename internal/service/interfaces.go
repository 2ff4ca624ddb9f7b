package service

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_service_mock.go -package=mock

import (
	"context"

	"github.com/mlevkov/go-auth-keeper/models"
)

// AuthService is the application-facing facade over registration, session
// and password-reset flows. Handlers depend on this interface only.
type AuthService interface {
	// Register creates a new account from raw credentials.
	Register(ctx context.Context, email, password string) (models.User, error)

	// Login verifies credentials and opens a fresh session, returning the
	// opaque session token.
	Login(ctx context.Context, email, password string) (string, error)

	// ResolveSession maps a session token to its owner. Unknown or empty
	// tokens resolve to (nil, nil); only infrastructure failures error.
	ResolveSession(ctx context.Context, sessionToken string) (*models.User, error)

	// Logout closes the user's session. Closing an already-closed session
	// is a no-op.
	Logout(ctx context.Context, userID int64) error

	// RequestReset issues a single-use password reset token for the account.
	RequestReset(ctx context.Context, email string) (string, error)

	// ConfirmReset consumes a reset token and installs the new password,
	// revoking any open session.
	ConfirmReset(ctx context.Context, resetToken, newPassword string) error
}
