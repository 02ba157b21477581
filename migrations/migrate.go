// Package migrations embeds the goose SQL migrations of the Message Store
// Service (one directory per SQL dialect) and of the client's local cookie
// database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// Migrate applies the Message Store Service schema. driver is the
// database/sql driver name the connection was opened with ("pgx" or
// "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	switch driver {
	case "pgx", "postgres":
		return up(db, "postgres", "postgres")
	case "sqlite3", "sqlite":
		return up(db, "sqlite3", "sqlite")
	default:
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, driver)
	}
}

// MigrateClient applies the client's local schema to a SQLite connection.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", "client")
}

// up runs the migrations in dir against db using goose dialect.
func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
