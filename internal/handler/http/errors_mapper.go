package http

import (
	"errors"
	"net/http"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/service"
	"github.com/mlevkov/go-auth-keeper/internal/store"
	"github.com/mlevkov/go-auth-keeper/internal/utils"
	"github.com/mlevkov/go-auth-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrEmailNotRegistered:  http.StatusForbidden,
	service.ErrInvalidResetToken:   http.StatusForbidden,

	store.ErrEmailAlreadyRegistered: http.StatusBadRequest,
	store.ErrUserNotFound:           http.StatusForbidden,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps a service-layer error to an HTTP status and writes a JSON
// error body. Internal errors are masked with the generic status text so
// infrastructure details never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(status)}, status)
		return
	}

	log.Debug().Err(err).Msg(msg)
	utils.WriteJSON(w, models.MessageResponse{Message: err.Error()}, status)
}
