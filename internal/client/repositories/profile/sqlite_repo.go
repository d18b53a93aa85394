package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/healthguidelab/keto365/internal/client/models"
	"github.com/healthguidelab/keto365/internal/dbx"
)

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

// NewSQLiteRepository binds the repository to db. now stamps CreatedAt;
// nil means time.Now.
func NewSQLiteRepository(db dbx.DBTX, now func() time.Time) *SQLiteRepository {
	if now == nil {
		now = time.Now
	}
	return &SQLiteRepository{db: db, now: now}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO user_email (id, email, created_at_millis)
		VALUES (?, ?, ?)
	`, models.ProfileID, email, r.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.UserProfile, error) {
	var (
		email  string
		millis int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT email, created_at_millis FROM user_email WHERE id = ?`, models.ProfileID,
	).Scan(&email, &millis)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &models.UserProfile{Email: email, CreatedAt: time.UnixMilli(millis)}, nil
}
