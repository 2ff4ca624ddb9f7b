// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	// cost is the bcrypt work factor. Stored in the struct so it can be
	// raised per deployment without touching call sites.
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] backed by bcrypt.
//
// cost is clamped to the bcrypt library's valid range; passing 0 selects
// bcrypt.DefaultCost. bcrypt embeds a fresh 128-bit salt into every hash
// it produces and its comparison routine runs in constant time, which is
// exactly the contract [PasswordHasher] requires.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher] using bcrypt.GenerateFromPassword.
// Returns a wrapped error if the password exceeds bcrypt's 72-byte input
// limit; any other failure is an internal bcrypt error.
func (h *bcryptHasher) Hash(password string) ([]byte, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return hashed, nil
}

// Verify implements [PasswordHasher] using bcrypt.CompareHashAndPassword.
// All failure modes (wrong password, truncated or corrupted hash) collapse
// to false; callers never learn why verification failed.
func (h *bcryptHasher) Verify(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}
