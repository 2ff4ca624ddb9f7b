// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package tui

import (
	"errors"
	"strings"

	"github.com/mlevkov/go-auth-keeper/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "wrong email or password"
	case errors.Is(err, adapter.ErrBadRequest):
		return "email is already registered"
	case errors.Is(err, adapter.ErrForbidden):
		return "session or reset token is no longer valid"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unreachable"
	}

	return err.Error()
}
