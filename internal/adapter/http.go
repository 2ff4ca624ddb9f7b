// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mlevkov/go-auth-keeper/internal/config"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
	"github.com/mlevkov/go-auth-keeper/models"
)

// sessionCookieName must match the cookie the server sets on login.
const sessionCookieName = "session_id"

type httpServerAdapter struct {
	client *utils.HTTPClient

	sessionToken string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		// Session handling is explicit via SetSessionToken; an automatic
		// cookie jar would silently resurrect cleared sessions.
		SetCookieJar(nil)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetSessionToken implements [ServerAdapter]. It stores token
// (whitespace-trimmed) for use as the session cookie on all subsequent
// authenticated requests.
func (h *httpServerAdapter) SetSessionToken(token string) {
	h.sessionToken = strings.TrimSpace(token)
}

// SessionToken implements [ServerAdapter].
func (h *httpServerAdapter) SessionToken() string {
	return h.sessionToken
}

// sessionCookie builds the cookie attached to authenticated requests.
func (h *httpServerAdapter) sessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: h.sessionToken}
}

// Welcome implements [ServerAdapter].
func (h *httpServerAdapter) Welcome(ctx context.Context) (models.MessageResponse, error) {
	var payload models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("welcome request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return payload, nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /users and returns the server's confirmation payload.
func (h *httpServerAdapter) Register(ctx context.Context, email, password string) (models.MessageResponse, error) {
	var payload models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialsRequest{Email: email, Password: password}).
		SetResult(&payload).
		Post("/users")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return payload, nil
}

// Login implements [ServerAdapter]. On success the session token is read
// from the "session_id" response cookie and stored via SetSessionToken.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.MessageResponse, error) {
	var payload models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialsRequest{Email: email, Password: password}).
		SetResult(&payload).
		Post("/sessions")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			h.SetSessionToken(cookie.Value)
			break
		}
	}
	if h.sessionToken == "" {
		return models.MessageResponse{}, fmt.Errorf("login response carries no %s cookie", sessionCookieName)
	}

	return payload, nil
}

// Logout implements [ServerAdapter]. The server answers with a redirect to
// the welcome page, which the client follows; the stored token is cleared
// once the session is closed.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		Delete("/sessions")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetSessionToken("")
	return nil
}

// Profile implements [ServerAdapter].
func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var payload models.ProfileResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetCookie(h.sessionCookie()).
		SetResult(&payload).
		Get("/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return payload, nil
}

// RequestReset implements [ServerAdapter].
func (h *httpServerAdapter) RequestReset(ctx context.Context, email string) (models.ResetTokenResponse, error) {
	var payload models.ResetTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResetRequest{Email: email}).
		SetResult(&payload).
		Post("/reset_password")
	if err != nil {
		return models.ResetTokenResponse{}, fmt.Errorf("reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResetTokenResponse{}, err
	}

	return payload, nil
}

// ConfirmReset implements [ServerAdapter].
func (h *httpServerAdapter) ConfirmReset(ctx context.Context, email, resetToken, newPassword string) (models.MessageResponse, error) {
	var payload models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResetConfirmRequest{Email: email, ResetToken: resetToken, NewPassword: newPassword}).
		SetResult(&payload).
		Put("/reset_password")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("reset confirmation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return payload, nil
}
