package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/store"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
	"github.com/mlevkov/go-auth-keeper/models"
)

func newTestResetManager(repo store.UserRepository) *resetManager {
	return newResetManager(repo, utils.NewTokenGenerator(), logger.Nop())
}

func TestIssue_PersistsResetToken(t *testing.T) {
	user := models.User{UserID: 8, Email: "bob@example.com"}
	var persisted models.UserUpdate
	repo := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return user, nil
		},
		updateFn: func(_ context.Context, userID int64, update models.UserUpdate) error {
			require.Equal(t, user.UserID, userID)
			persisted = update
			return nil
		},
	}

	rm := newTestResetManager(repo)
	token, err := rm.Issue(context.Background(), user.Email)

	require.NoError(t, err)
	_, parseErr := uuid.Parse(token)
	assert.NoError(t, parseErr, "reset token must be a valid UUID")
	require.True(t, persisted.ResetToken.Set)
	assert.Equal(t, token, *persisted.ResetToken.Value)
	assert.False(t, persisted.SessionToken.Set, "issuing a reset token must not log the user out")
}

func TestIssue_UnknownEmail(t *testing.T) {
	rm := newTestResetManager(&mockUserRepository{})

	token, err := rm.Issue(context.Background(), "nobody@example.com")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrEmailNotRegistered)
}

func TestIssue_ReplacesOutstandingToken(t *testing.T) {
	old := "old-reset-token"
	user := models.User{UserID: 8, Email: "bob@example.com", ResetToken: &old}
	repo := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return user, nil
		},
	}

	rm := newTestResetManager(repo)
	token, err := rm.Issue(context.Background(), user.Email)

	require.NoError(t, err)
	assert.NotEqual(t, old, token)
}

func TestConsume_AppliesAtomicUpdate(t *testing.T) {
	reset := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	user := models.User{UserID: 8, Email: "bob@example.com", ResetToken: &reset}
	newHash := []byte("new-bcrypt-hash")
	var persisted models.UserUpdate
	repo := &mockUserRepository{
		findByResetTokenFn: func(_ context.Context, token string) (models.User, error) {
			if token == reset {
				return user, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
		updateFn: func(_ context.Context, userID int64, update models.UserUpdate) error {
			require.Equal(t, user.UserID, userID)
			persisted = update
			return nil
		},
	}

	rm := newTestResetManager(repo)
	err := rm.Consume(context.Background(), reset, newHash)

	require.NoError(t, err)
	assert.Equal(t, newHash, persisted.HashedPassword)
	require.True(t, persisted.ResetToken.Set)
	assert.Nil(t, persisted.ResetToken.Value)
	require.True(t, persisted.SessionToken.Set)
	assert.Nil(t, persisted.SessionToken.Value)
}

func TestConsume_UnknownToken(t *testing.T) {
	rm := newTestResetManager(&mockUserRepository{})

	err := rm.Consume(context.Background(), "never-issued", []byte("hash"))
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestConsume_EmptyToken(t *testing.T) {
	repo := &mockUserRepository{
		findByResetTokenFn: func(context.Context, string) (models.User, error) {
			t.Fatal("empty token must be rejected before any lookup")
			return models.User{}, nil
		},
	}

	rm := newTestResetManager(repo)
	err := rm.Consume(context.Background(), "", []byte("hash"))
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestConsume_InfrastructureFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByResetTokenFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}

	rm := newTestResetManager(repo)
	err := rm.Consume(context.Background(), "some-token", []byte("hash"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidResetToken)
}
