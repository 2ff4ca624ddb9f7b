// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

// Package adapter provides transport-layer abstractions for communicating
// with a running go-auth-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/mlevkov/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-auth-keeper server. Implementations are responsible for serialisation,
// session-cookie management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetSessionToken stores the session token that will be attached as the
	// "session_id" cookie to all subsequent authenticated requests. It is
	// called automatically after a successful Login.
	SetSessionToken(token string)

	// SessionToken returns the session token currently held by the adapter,
	// or an empty string if none has been set.
	SessionToken() string

	// Welcome fetches the unauthenticated welcome payload from GET /.
	Welcome(ctx context.Context) (models.MessageResponse, error)

	// Register creates a new account via POST /users. Returns [ErrBadRequest]
	// (wrapped) if the email is already registered.
	Register(ctx context.Context, email, password string) (models.MessageResponse, error)

	// Login opens a session via POST /sessions. On success the session token
	// from the "session_id" response cookie is stored via SetSessionToken.
	// Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, email, password string) (models.MessageResponse, error)

	// Logout closes the current session via DELETE /sessions and clears the
	// stored session token. Returns [ErrForbidden] (wrapped) if the session
	// is not valid.
	Logout(ctx context.Context) error

	// Profile fetches the authenticated user's profile via GET /profile.
	// Returns [ErrForbidden] (wrapped) if the session is not valid.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// RequestReset obtains a password-reset token via POST /reset_password.
	// Returns [ErrForbidden] (wrapped) if the email is not registered.
	RequestReset(ctx context.Context, email string) (models.ResetTokenResponse, error)

	// ConfirmReset redeems a reset token via PUT /reset_password, installing
	// the new password. Returns [ErrForbidden] (wrapped) if the token is
	// invalid.
	ConfirmReset(ctx context.Context, email, resetToken, newPassword string) (models.MessageResponse, error)
}
