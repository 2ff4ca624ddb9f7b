// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlevkov/go-auth-keeper/models"
)

func Test_buildUserUpdateQuery_AllFields(t *testing.T) {
	update := models.UserUpdate{
		HashedPassword: []byte("new-hash"),
		SessionToken:   models.SetString("session-token"),
		ResetToken:     models.SetNull(),
	}

	query, args, err := buildUserUpdateQuery(42, update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users")
	require.Contains(t, q, "hashed_password")
	require.Contains(t, q, "session_token")
	require.Contains(t, q, "reset_token")
	require.Contains(t, q, "where user_id")

	// placeholder format should be $1 (Postgres style, also accepted by SQLite)
	require.Contains(t, query, "$1")

	// three SET values plus the WHERE argument
	require.Len(t, args, 4)
	assert.Equal(t, []byte("new-hash"), args[0])
	assert.Equal(t, int64(42), args[len(args)-1])
}

func Test_buildUserUpdateQuery_OnlySessionToken(t *testing.T) {
	update := models.UserUpdate{SessionToken: models.SetString("fresh")}

	query, args, err := buildUserUpdateQuery(7, update)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "session_token")
	assert.NotContains(t, q, "reset_token")
	assert.NotContains(t, q, "hashed_password")

	require.Len(t, args, 2)
	token, ok := args[0].(*string)
	require.True(t, ok, "set value should be passed as *string")
	assert.Equal(t, "fresh", *token)
}

func Test_buildUserUpdateQuery_ClearSessionToken_WritesNull(t *testing.T) {
	update := models.UserUpdate{SessionToken: models.SetNull()}

	query, args, err := buildUserUpdateQuery(7, update)
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "session_token")
	require.Len(t, args, 2)

	// set-to-NULL travels as a typed nil, distinct from "absent"
	token, ok := args[0].(*string)
	require.True(t, ok)
	assert.Nil(t, token)
}

func Test_buildUserUpdateQuery_Empty(t *testing.T) {
	_, _, err := buildUserUpdateQuery(7, models.UserUpdate{})
	require.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func Test_buildUserUpdateQuery_AbsentDiffersFromNull(t *testing.T) {
	absent := models.UserUpdate{HashedPassword: []byte("h")}
	cleared := models.UserUpdate{HashedPassword: []byte("h"), ResetToken: models.SetNull()}

	absentQuery, absentArgs, err := buildUserUpdateQuery(1, absent)
	require.NoError(t, err)
	clearedQuery, clearedArgs, err := buildUserUpdateQuery(1, cleared)
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(absentQuery), "reset_token")
	assert.Contains(t, strings.ToLower(clearedQuery), "reset_token")
	assert.Len(t, clearedArgs, len(absentArgs)+1)
}
