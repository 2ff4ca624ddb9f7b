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

// resetManager owns the password-reset token lifecycle. Tokens are
// single-use: consuming one installs the new password hash, clears the reset
// token, and revokes any open session in one atomic update.
type resetManager struct {
	userRepository store.UserRepository
	tokens         *utils.TokenGenerator
	logger         *logger.Logger
}

func newResetManager(userRepository store.UserRepository, tokens *utils.TokenGenerator, logger *logger.Logger) *resetManager {
	return &resetManager{
		userRepository: userRepository,
		tokens:         tokens,
		logger:         logger,
	}
}

// Issue generates a fresh reset token for the account registered under email
// and persists it on the user row, replacing any outstanding reset token.
//
// Returns [ErrEmailNotRegistered] if no account exists for the email.
func (r *resetManager) Issue(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := r.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", email).Msg("reset requested for unregistered email")
			return "", ErrEmailNotRegistered
		}
		log.Err(err).Str("email", email).Msg("user lookup for reset failed")
		return "", fmt.Errorf("user lookup for reset failed: %w", err)
	}

	token := r.tokens.Generate()
	update := models.UserUpdate{ResetToken: models.SetString(token)}
	if err := r.userRepository.Update(ctx, user.UserID, update); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("reset token persistence failed")
		return "", fmt.Errorf("reset token persistence failed: %w", err)
	}

	log.Debug().Int64("id", user.UserID).Msg("reset token issued")
	return token, nil
}

// Consume redeems a reset token: the new password hash is installed, the
// token is cleared so it cannot be replayed, and the session token is
// revoked so stolen sessions do not survive a password change. All three
// land in a single UPDATE.
//
// Returns [ErrInvalidResetToken] if the token matches no account.
func (r *resetManager) Consume(ctx context.Context, resetToken string, newHash []byte) error {
	log := logger.FromContext(ctx)

	if resetToken == "" {
		return ErrInvalidResetToken
	}

	user, err := r.userRepository.FindByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("unknown reset token presented")
			return ErrInvalidResetToken
		}
		log.Err(err).Msg("reset token lookup failed")
		return fmt.Errorf("reset token lookup failed: %w", err)
	}

	update := models.UserUpdate{
		HashedPassword: newHash,
		SessionToken:   models.SetNull(),
		ResetToken:     models.SetNull(),
	}
	if err := r.userRepository.Update(ctx, user.UserID, update); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Debug().Int64("id", user.UserID).Msg("password reset completed")
	return nil
}
