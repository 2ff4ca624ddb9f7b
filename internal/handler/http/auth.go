// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package http

import (
	"encoding/json"
	"net/http"

	"github.com/mlevkov/go-auth-keeper/internal/app"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
	"github.com/mlevkov/go-auth-keeper/models"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session_id"

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgWelcome}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, "user registration failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Email: user.Email, Message: app.MsgUserCreated}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, "user login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.WriteJSON(w, models.MessageResponse{Email: req.Email, Message: app.MsgLoggedIn}, http.StatusOK)
}

// logout closes the current session and redirects to the welcome page.
// The session middleware guarantees a resolved user in the context here.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context after auth middleware")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	if err := h.services.AuthService.Logout(ctx, userID); err != nil {
		h.writeError(w, r, err, "user logout failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email in context after auth middleware")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Email: email}, http.StatusOK)
}

func (h *Handler) resetRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.RequestReset(ctx, req.Email)
	if err != nil {
		h.writeError(w, r, err, "reset token request failed")
		return
	}

	utils.WriteJSON(w, models.ResetTokenResponse{Email: req.Email, ResetToken: token}, http.StatusOK)
}

func (h *Handler) resetConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ConfirmReset(ctx, req.ResetToken, req.NewPassword); err != nil {
		h.writeError(w, r, err, "password update failed")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Email: req.Email, Message: app.MsgPasswordUpdated}, http.StatusOK)
}
