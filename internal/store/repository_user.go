package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It works against both the PostgreSQL and SQLite backends; engine-specific
// behavior is confined to unique-violation detection and the [DB]'s error
// classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT relies on the unique constraint on the email column, so the
// existence check and the insert are one atomic operation; there is no
// check-then-act window for concurrent creators.
//
// Error handling:
//   - unique violation (PostgreSQL 23505 / SQLite constraint) → [ErrEmailAlreadyRegistered].
//   - Any other driver-level error → wrapped infrastructure error, logged
//     with its retryability classification.
func (r *userRepository) Create(ctx context.Context, email string, hashedPassword []byte) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, email, hashedPassword)

	var user models.User
	if err := row.Scan(&user.UserID, &user.Email, &user.HashedPassword, &user.SessionToken, &user.ResetToken, &user.CreatedAt); err != nil {
		if r.isUniqueViolation(err) {
			log.Debug().Str("email", email).Msg("email already registered")
			return models.User{}, ErrEmailAlreadyRegistered
		}

		r.logInfrastructureError(log, "*userRepository.Create", err)
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindByEmail implements [UserRepository].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, findUserByEmail, email)
}

// FindBySessionToken implements [UserRepository].
func (r *userRepository) FindBySessionToken(ctx context.Context, token string) (models.User, error) {
	return r.findBy(ctx, findUserBySessionToken, token)
}

// FindByResetToken implements [UserRepository].
func (r *userRepository) FindByResetToken(ctx context.Context, token string) (models.User, error) {
	return r.findBy(ctx, findUserByResetToken, token)
}

// findBy runs one of the single-row lookup queries. The unique constraints
// on email and the two token columns guarantee at most one match, so a
// plain QueryRow is sufficient; a multi-match would mean a corrupted store
// and cannot be produced through this repository.
func (r *userRepository) findBy(ctx context.Context, query string, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, value)
	if err := row.Scan(&user.UserID, &user.Email, &user.HashedPassword, &user.SessionToken, &user.ResetToken, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		r.logInfrastructureError(log, "*userRepository.findBy", err)
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// Update applies a partial update built by [buildUserUpdateQuery].
//
// Error handling:
//   - empty update → [ErrNoFieldsToUpdate].
//   - zero rows affected → [ErrUserNotFound].
//   - Any other driver-level error → wrapped infrastructure error.
func (r *userRepository) Update(ctx context.Context, userID int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUserUpdateQuery(userID, update)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logInfrastructureError(log, "*userRepository.Update", err)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logInfrastructureError(log, "*userRepository.Update", err)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is the engine's unique-constraint
// failure on the email column.
func (r *userRepository) isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	return sqliteUniqueViolation(err)
}

// logInfrastructureError records a driver-level failure together with its
// classification so operators can tell transient faults from permanent ones.
func (r *userRepository) logInfrastructureError(log *logger.Logger, fn string, err error) {
	retryable := r.db.errorClassificator != nil &&
		r.db.errorClassificator.Classify(err) == Retryable

	log.Err(err).
		Str("func", fn).
		Bool("retryable", retryable).
		Msg("unexpected DB error")
}
