package service

import (
	"fmt"

	"github.com/mlevkov/go-auth-keeper/internal/config"
	"github.com/mlevkov/go-auth-keeper/internal/crypto"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)

	authService, err := NewAuthService(storages.UserRepository, hasher, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service init failed: %w", err)
	}

	return &Services{
		AuthService: authService,
	}, nil
}
