package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/code-sharing-box/internal/config"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB with the dialect-specific pieces repositories need:
// a squirrel statement builder using the driver's placeholder format and an
// error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if driver == config.DriverPostgres {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            builder,
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the Message Store Service schema for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// MigrateClient applies the client's local cookie schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// wrapError wraps err with [ErrStoreUnavailable] when the classifier deems
// it transient, and with sentinel otherwise.
func (db *DB) wrapError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
