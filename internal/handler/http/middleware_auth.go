package http

import (
	"context"
	"net/http"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It reads the "session_id" cookie, resolves it to a user via
// [service.AuthService.ResolveSession], and — on success — stores the user's
// ID and email in the request context under [utils.UserIDCtxKey] and
// [utils.UserEmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 403 Forbidden in the following cases:
//   - The session cookie is absent ([ErrNoSessionCookie]).
//   - The cookie value resolves to no user ([ErrInvalidSession]).
//
// Infrastructure failures during resolution yield HTTP 500 instead, so a
// database outage is not mistaken for a revoked session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Debug().Err(ErrNoSessionCookie).Send()
			http.Error(w, ErrNoSessionCookie.Error(), http.StatusForbidden)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("session resolution failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		if user == nil {
			log.Debug().Err(ErrInvalidSession).Send()
			http.Error(w, ErrInvalidSession.Error(), http.StatusForbidden)
			return
		}

		// Store the resolved identity in the context so that downstream
		// handlers can use it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, user.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
