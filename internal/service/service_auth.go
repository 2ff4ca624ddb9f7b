// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mlevkov/go-auth-keeper/internal/crypto"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/store"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
	"github.com/mlevkov/go-auth-keeper/internal/validators"
	"github.com/mlevkov/go-auth-keeper/models"
)

// authService is the concrete implementation of [AuthService]. It composes
// the password hasher, the session manager, and the reset manager over a
// shared UserRepository.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	sessions       *sessionManager
	resets         *resetManager

	// dummyHash is verified against when login hits an unknown email, so a
	// miss costs the same bcrypt work as a wrong password. Without it the
	// response-time difference would reveal which emails are registered.
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService constructs the auth facade wired to the given repository
// and hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash("auth-keeper-dummy-credential")
	if err != nil {
		return nil, fmt.Errorf("dummy hash generation failed: %w", err)
	}

	tokens := utils.NewTokenGenerator()
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewCredentialsValidator(),
		sessions:       newSessionManager(userRepository, tokens, logger),
		resets:         newResetManager(userRepository, tokens, logger),
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register creates a new account from raw credentials.
//
// The email is normalized (trimmed, lowercased) before storage so lookups
// are case-insensitive. The password is bcrypt-hashed; the plaintext is
// never persisted or logged.
//
// Returns:
//   - [ErrInvalidDataProvided] if email or password is empty.
//   - [store.ErrEmailAlreadyRegistered] (wrapped) if the email is taken.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	creds := models.CredentialsRequest{Email: email, Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Msg("registration with invalid credentials")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.Create(ctx, email, hash)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.UserID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

// Login verifies credentials and opens a fresh session.
//
// Unknown email and wrong password are indistinguishable to the caller: both
// return [ErrInvalidCredentials], and the unknown-email path still performs
// a bcrypt comparison against a dummy hash so the two take the same time.
func (a *authService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	creds := models.CredentialsRequest{Email: email, Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		return "", ErrInvalidCredentials
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.hasher.Verify(a.dummyHash, password)
			return "", ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user lookup during login failed")
		return "", fmt.Errorf("user lookup during login failed: %w", err)
	}

	if !a.hasher.Verify(user.HashedPassword, password) {
		log.Debug().Int64("id", user.UserID).Msg("login with wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := a.sessions.CreateSession(ctx, email)
	if err != nil {
		return "", err
	}
	if token == "" {
		// the account vanished between the credential check and the session
		// creation; a success with no token must not reach the caller
		log.Warn().Int64("id", user.UserID).Msg("user disappeared during login")
		return "", ErrInvalidCredentials
	}

	log.Info().Int64("id", user.UserID).Msg("user logged in")
	return token, nil
}

// ResolveSession maps a session token to its owner. See
// [sessionManager.Resolve] for the soft-fail contract.
func (a *authService) ResolveSession(ctx context.Context, sessionToken string) (*models.User, error) {
	return a.sessions.Resolve(ctx, sessionToken)
}

// Logout closes the user's session. Idempotent.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	return a.sessions.Destroy(ctx, userID)
}

// RequestReset issues a single-use reset token for the account.
//
// Returns [ErrEmailNotRegistered] for unknown emails: the reset endpoint
// deliberately confirms account existence, matching the profile flow that
// already requires a valid session.
func (a *authService) RequestReset(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)
	creds := models.CredentialsRequest{Email: email}
	if err := a.validator.Validate(ctx, creds, validators.FieldEmail); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return a.resets.Issue(ctx, email)
}

// ConfirmReset consumes a reset token and installs the new password.
//
// Returns:
//   - [ErrInvalidDataProvided] if the new password is empty.
//   - [ErrInvalidResetToken] if the token matches no account.
func (a *authService) ConfirmReset(ctx context.Context, resetToken, newPassword string) error {
	log := logger.FromContext(ctx)

	creds := models.CredentialsRequest{Password: newPassword}
	if err := a.validator.Validate(ctx, creds, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	return a.resets.Consume(ctx, resetToken, hash)
}

// normalizeEmail canonicalizes an email address for storage and lookup.
// The users table enforces uniqueness on the normalized form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
