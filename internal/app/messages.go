// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

// Package app contains shared application-layer constants used across the
// auth-keeper server handlers and the API client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place ensures consistent wording
// throughout the API; the end-to-end flow checks responses against the same
// constants the handlers produce.
package app

const (
	// MsgWelcome is the body message of the public welcome page.
	MsgWelcome = "Bienvenue"

	// MsgUserCreated is returned on successful registration.
	MsgUserCreated = "user created"

	// MsgLoggedIn is returned on successful login, next to the session cookie.
	MsgLoggedIn = "logged in"

	// MsgPasswordUpdated is returned when a reset token was exchanged for a
	// new password.
	MsgPasswordUpdated = "Password updated"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"
)
