package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/healthguidelab/keto365/internal/logging"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn, logging.Nop())
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"goose_db_version", "metadata", "user_email"} {
		require.Truef(t, tableExists(t, db, table), "expected table %s", table)
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db, logging.Nop()))
	require.NoError(t, RunMigrations(ctx, db, logging.Nop()))
	require.True(t, tableExists(t, db, "user_email"))
}

func TestInitDatabase_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn, logging.Nop())
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO user_email(id, email, created_at_millis) VALUES (1, 'u@x.com', 1)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, dsn, logging.Nop())
	require.NoError(t, err)
	defer db.Close()

	var email string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT email FROM user_email WHERE id = 1`).Scan(&email))
	require.Equal(t, "u@x.com", email)
}

func TestUserEmail_RejectsSecondRowID(t *testing.T) {
	ctx := context.Background()
	db, err := InitDatabase(ctx, filepath.Join(t.TempDir(), "app.db"), logging.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO user_email(id, email, created_at_millis) VALUES (2, 'u@x.com', 1)`)
	require.Error(t, err)
}

func TestInitDatabase_UnreachablePath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing-dir", "app.db")

	_, err := InitDatabase(context.Background(), dsn, logging.Nop())
	require.ErrorIs(t, err, ErrDatabaseUnavailable)
}
