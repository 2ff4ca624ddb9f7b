// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mlevkov/go-auth-keeper/internal/crypto"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/store"
	"github.com/mlevkov/go-auth-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn             func(ctx context.Context, email string, hashedPassword []byte) (models.User, error)
	findByEmailFn        func(ctx context.Context, email string) (models.User, error)
	findBySessionTokenFn func(ctx context.Context, token string) (models.User, error)
	findByResetTokenFn   func(ctx context.Context, token string) (models.User, error)
	updateFn             func(ctx context.Context, userID int64, update models.UserUpdate) error
}

func (m *mockUserRepository) Create(ctx context.Context, email string, hashedPassword []byte) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, email, hashedPassword)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindBySessionToken(ctx context.Context, token string) (models.User, error) {
	if m.findBySessionTokenFn != nil {
		return m.findBySessionTokenFn(ctx, token)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) FindByResetToken(ctx context.Context, token string) (models.User, error) {
	if m.findByResetTokenFn != nil {
		return m.findByResetTokenFn(ctx, token)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, userID int64, update models.UserUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, update)
	}
	return nil
}

// testHasher uses the minimum bcrypt cost so the suite stays fast.
func testHasher() crypto.PasswordHasher {
	return crypto.NewBcryptHasher(bcrypt.MinCost)
}

func newTestAuthService(t *testing.T, repo store.UserRepository) AuthService {
	t.Helper()
	svc, err := NewAuthService(repo, testHasher(), logger.Nop())
	require.NoError(t, err)
	return svc
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var gotEmail string
	var gotHash []byte
	repo := &mockUserRepository{
		createFn: func(_ context.Context, email string, hashedPassword []byte) (models.User, error) {
			gotEmail = email
			gotHash = hashedPassword
			return models.User{UserID: 1, Email: email, HashedPassword: hashedPassword}, nil
		},
	}

	svc := newTestAuthService(t, repo)
	user, err := svc.Register(context.Background(), "Bob@Example.COM", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "bob@example.com", gotEmail, "email must be normalized before storage")
	assert.NoError(t, bcrypt.CompareHashAndPassword(gotHash, []byte("secret")))
}

func TestRegister_EmptyFields(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.Register(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "bob@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Register(context.Background(), "   ", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided, "whitespace-only email is empty after normalization")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(context.Context, string, []byte) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyRegistered
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Register(context.Background(), "bob@example.com", "secret")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyRegistered)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func registeredUser(t *testing.T, userID int64, email, password string) models.User {
	t.Helper()
	hash, err := testHasher().Hash(password)
	require.NoError(t, err)
	return models.User{UserID: userID, Email: email, HashedPassword: hash}
}

func TestLogin_Success(t *testing.T) {
	user := registeredUser(t, 5, "bob@example.com", "secret")
	var persistedToken *string
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			if email == user.Email {
				return user, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
		updateFn: func(_ context.Context, userID int64, update models.UserUpdate) error {
			require.Equal(t, user.UserID, userID)
			require.True(t, update.SessionToken.Set)
			persistedToken = update.SessionToken.Value
			return nil
		},
	}

	svc := newTestAuthService(t, repo)
	token, err := svc.Login(context.Background(), " Bob@Example.com ", "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, persistedToken)
	assert.Equal(t, token, *persistedToken, "returned token must match the persisted one")
}

func TestLogin_WrongPassword(t *testing.T) {
	user := registeredUser(t, 5, "bob@example.com", "secret")
	repo := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return user, nil
		},
	}

	svc := newTestAuthService(t, repo)
	token, err := svc.Login(context.Background(), "bob@example.com", "not-the-password")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	token, err := svc.Login(context.Background(), "nobody@example.com", "secret")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"unknown email and wrong password must be indistinguishable")
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "bob@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UserDeletedBeforeSessionCreation(t *testing.T) {
	user := registeredUser(t, 5, "bob@example.com", "secret")
	lookups := 0
	repo := &mockUserRepository{
		// the account exists for the credential check but is gone by the
		// time the session is created
		findByEmailFn: func(context.Context, string) (models.User, error) {
			lookups++
			if lookups == 1 {
				return user, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}

	svc := newTestAuthService(t, repo)
	token, err := svc.Login(context.Background(), "bob@example.com", "secret")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials,
		"a login must never succeed without a session token")
}

func TestLogin_RepositoryFailure(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}

	svc := newTestAuthService(t, repo)
	_, err := svc.Login(context.Background(), "bob@example.com", "secret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials,
		"infrastructure failures must not masquerade as bad credentials")
}

// ─────────────────────────────────────────────
// ConfirmReset (facade-level validation)
// ─────────────────────────────────────────────

func TestConfirmReset_EmptyPassword(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	err := svc.ConfirmReset(context.Background(), "some-token", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestConfirmReset_InstallsNewHash(t *testing.T) {
	user := registeredUser(t, 9, "bob@example.com", "old-password")
	var applied models.UserUpdate
	repo := &mockUserRepository{
		findByResetTokenFn: func(_ context.Context, token string) (models.User, error) {
			if token == "valid-reset-token" {
				return user, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
		updateFn: func(_ context.Context, userID int64, update models.UserUpdate) error {
			require.Equal(t, user.UserID, userID)
			applied = update
			return nil
		},
	}

	svc := newTestAuthService(t, repo)
	err := svc.ConfirmReset(context.Background(), "valid-reset-token", "new-password")

	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(applied.HashedPassword, []byte("new-password")))
	assert.True(t, applied.SessionToken.Set)
	assert.Nil(t, applied.SessionToken.Value, "open session must be revoked on password change")
	assert.True(t, applied.ResetToken.Set)
	assert.Nil(t, applied.ResetToken.Value, "reset token must not be replayable")
}

// ─────────────────────────────────────────────
// RequestReset (facade-level validation)
// ─────────────────────────────────────────────

func TestRequestReset_EmptyEmail(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.RequestReset(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRequestReset_NormalizesEmail(t *testing.T) {
	user := registeredUser(t, 2, "bob@example.com", "secret")
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			if email == "bob@example.com" {
				return user, nil
			}
			return models.User{}, store.ErrUserNotFound
		},
	}

	svc := newTestAuthService(t, repo)
	token, err := svc.RequestReset(context.Background(), " BOB@example.com ")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
