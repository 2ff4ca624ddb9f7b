package handler

import (
	"github.com/mlevkov/go-auth-keeper/internal/config"
	"github.com/mlevkov/go-auth-keeper/internal/handler/http"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
