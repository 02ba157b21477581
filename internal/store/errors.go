package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrMessageNotFound is returned when the messages table holds no rows.
	ErrMessageNotFound = errors.New("no message found")

	// ErrCookieNotFound is returned when no cookie with the requested name is
	// stored, or the stored one has expired.
	ErrCookieNotFound = errors.New("cookie not found")

	// ErrStoreUnavailable wraps driver errors classified as transient
	// (connection loss, serialization failure, deadlock). The request may
	// succeed if repeated later.
	ErrStoreUnavailable = errors.New("store is temporarily unavailable")

	// ErrUnsupportedDriver is returned when the configured database driver is
	// neither "pgx" nor "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
