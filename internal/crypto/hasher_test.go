// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

// TestHash_VerifyRoundTrip verifies that a password always verifies against
// its own hash.
func TestHash_VerifyRoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, password := range []string{"pw1", "b4l0u", "correct horse battery staple", "пароль"} {
		hashed, err := h.Hash(password)
		require.NoError(t, err)
		assert.True(t, h.Verify(hashed, password), "password %q should verify", password)
	}
}

// TestHash_FreshSaltPerCall verifies that hashing the same password twice
// yields different hashes (fresh embedded salt).
func TestHash_FreshSaltPerCall(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// both still verify despite differing
	assert.True(t, h.Verify(first, "same-password"))
	assert.True(t, h.Verify(second, "same-password"))
}

// TestVerify_WrongPassword verifies that a different password never matches.
func TestVerify_WrongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hashed, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.False(t, h.Verify(hashed, "pw2"))
	assert.False(t, h.Verify(hashed, ""))
	assert.False(t, h.Verify(hashed, "pw1 "))
}

// TestVerify_MalformedHash verifies that corrupted or non-bcrypt input
// yields false instead of panicking.
func TestVerify_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(0)

	assert.False(t, h.Verify(nil, "pw1"))
	assert.False(t, h.Verify([]byte(""), "pw1"))
	assert.False(t, h.Verify([]byte("not-a-bcrypt-hash"), "pw1"))
	assert.False(t, h.Verify([]byte("$2a$garbage"), "pw1"))
}

// TestHash_TooLongPassword verifies that bcrypt's 72-byte input limit is
// surfaced as an error rather than a silent truncation.
func TestHash_TooLongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 100))
	require.Error(t, err)
}

// TestNewBcryptHasher_ClampsCost verifies that out-of-range costs fall back
// to the bcrypt default instead of producing a broken hasher.
func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	h := NewBcryptHasher(1000)

	hashed, err := h.Hash("pw1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost(hashed)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
