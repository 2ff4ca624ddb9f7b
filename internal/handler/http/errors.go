// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package http

import "errors"

// Sentinel errors used by the session middleware when inspecting the
// "session_id" cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the auth middleware when the
	// incoming request carries no "session_id" cookie at all.
	ErrNoSessionCookie = errors.New("no `session_id` cookie")

	// ErrInvalidSession is returned when a "session_id" cookie is present
	// but its value does not resolve to any open session.
	ErrInvalidSession = errors.New("invalid or expired session")
)
