package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlevkov/go-auth-keeper/internal/config"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer. Currently it holds only [UserRepository];
// additional repositories can be added here as the feature set grows.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the backend selected by the DSN: "postgres://" DSNs connect to
//     PostgreSQL; anything else is treated as a SQLite file path.
//  2. Applies schema migrations (goose for PostgreSQL; SQLite bootstraps
//     inside [NewConnectSQLite]).
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [UserRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}, nil
}

func connect(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		db, err := NewConnectPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return db, nil
	}

	return NewConnectSQLite(ctx, cfg, logger)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
