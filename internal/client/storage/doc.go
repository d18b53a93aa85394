// Package storage bootstraps the device-local SQLite database used by the
// keto365 client.
//
// InitDatabase opens the database file (creating it when missing), limits
// the pool to a single connection so every statement observes the same
// pragmas and the same writer, and applies the embedded goose migrations
// (see internal/client/migrations). The resulting *sql.DB is shared by the
// metadata and profile repositories.
//
// Failures to open or reach the database are reported as
// ErrDatabaseUnavailable; callers treat them as fatal.
package storage
