package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkov/go-auth-keeper/internal/mock"
	"github.com/mlevkov/go-auth-keeper/models"
)

func TestAuthMiddleware_ResolvesCookieToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	auth.EXPECT().
		ResolveSession(gomock.Any(), "session-token-123").
		Return(&models.User{UserID: 7, Email: "bob@example.com"}, nil)

	h := newHandlerWithAuth(t, auth)
	rec := doRequest(h, http.MethodGet, "/profile", "",
		&http.Cookie{Name: sessionCookieName, Value: "session-token-123"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.ProfileResponse](t, rec)
	assert.Equal(t, "bob@example.com", body.Email)
}

func TestAuthMiddleware_WrongCookieNameIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	// ResolveSession must never be called without a session_id cookie

	h := newHandlerWithAuth(t, auth)
	rec := doRequest(h, http.MethodGet, "/profile", "",
		&http.Cookie{Name: "other_cookie", Value: "session-token-123"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
