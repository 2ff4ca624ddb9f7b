package store

import (
	"database/sql"

	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/migrations"
)

// DB wraps a *sql.DB together with the error classifier of the engine it
// was opened against. All repositories operate through this type so they
// stay agnostic of the concrete backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies pending goose migrations. Only the PostgreSQL backend is
// migrated this way; the SQLite backend bootstraps its schema at connect
// time (see [NewConnectSQLite]).
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying by an operator. Domain errors never reach it.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
