// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/store"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
	"github.com/mlevkov/go-auth-keeper/models"
)

// sessionManager owns the session-token lifecycle: issuing a token on login,
// resolving a token back to its user, and destroying it on logout.
//
// A user holds at most one session at a time; issuing a new token replaces
// whatever token the row held before.
type sessionManager struct {
	userRepository store.UserRepository
	tokens         *utils.TokenGenerator
	logger         *logger.Logger
}

func newSessionManager(userRepository store.UserRepository, tokens *utils.TokenGenerator, logger *logger.Logger) *sessionManager {
	return &sessionManager{
		userRepository: userRepository,
		tokens:         tokens,
		logger:         logger,
	}
}

// CreateSession issues a fresh opaque token for the account registered under
// email and persists it on the user row.
//
// An unknown email yields ("", nil), not an error: by the time this runs the
// caller has already authenticated the user, so a miss here only means the
// account disappeared between the credential check and now.
func (s *sessionManager) CreateSession(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil
		}
		log.Err(err).Str("email", email).Msg("user lookup for session creation failed")
		return "", fmt.Errorf("user lookup for session creation failed: %w", err)
	}

	token := s.tokens.Generate()
	update := models.UserUpdate{SessionToken: models.SetString(token)}
	if err := s.userRepository.Update(ctx, user.UserID, update); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("session token persistence failed")
		return "", fmt.Errorf("session token persistence failed: %w", err)
	}

	log.Debug().Int64("id", user.UserID).Msg("session created")
	return token, nil
}

// Resolve maps a session token back to the user that owns it.
//
// Empty and unknown tokens resolve to (nil, nil) so callers can treat "no
// session" uniformly; only infrastructure failures produce an error.
func (s *sessionManager) Resolve(ctx context.Context, sessionToken string) (*models.User, error) {
	if sessionToken == "" {
		return nil, nil
	}

	user, err := s.userRepository.FindBySessionToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		logger.FromContext(ctx).Err(err).Msg("session token lookup failed")
		return nil, fmt.Errorf("session token lookup failed: %w", err)
	}

	return &user, nil
}

// Destroy clears the user's session token. Destroying a session for an
// unknown user, or a session that is already closed, is not an error.
func (s *sessionManager) Destroy(ctx context.Context, userID int64) error {
	update := models.UserUpdate{SessionToken: models.SetNull()}

	err := s.userRepository.Update(ctx, userID, update)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("session destruction failed")
		return fmt.Errorf("session destruction failed: %w", err)
	}

	return nil
}
