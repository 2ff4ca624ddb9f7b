// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mlevkov/go-auth-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, hashed_password)
    VALUES ($1, $2)
    RETURNING user_id, email, hashed_password, session_token, reset_token, created_at;`

	findUserByEmail = `SELECT user_id, email, hashed_password, session_token, reset_token, created_at
    FROM users
    WHERE email = $1;`

	findUserBySessionToken = `SELECT user_id, email, hashed_password, session_token, reset_token, created_at
    FROM users
    WHERE session_token = $1;`

	findUserByResetToken = `SELECT user_id, email, hashed_password, session_token, reset_token, created_at
    FROM users
    WHERE reset_token = $1;`
)

// buildUserUpdateQuery turns a [models.UserUpdate] into an UPDATE statement
// touching only the fields the caller set. NullableString fields that are
// set with a nil value become explicit NULL assignments, which is how
// logout and reset-consumption clear their tokens.
//
// Returns [ErrNoFieldsToUpdate] when the update carries nothing.
func buildUserUpdateQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"user_id": userID})

	if update.HashedPassword != nil {
		builder = builder.Set("hashed_password", update.HashedPassword)
	}
	if update.SessionToken.Set {
		builder = builder.Set("session_token", update.SessionToken.Value)
	}
	if update.ResetToken.Set {
		builder = builder.Set("reset_token", update.ResetToken.Value)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
