package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/healthguidelab/keto365/internal/client/repositories/metadata"
	"github.com/healthguidelab/keto365/internal/client/repositories/profile"
	"github.com/healthguidelab/keto365/internal/client/stores"
	"github.com/healthguidelab/keto365/internal/dbx"
)

// Persister records an accepted login: the profile is replaced and the
// login flag raised.
type Persister interface {
	SaveLogin(ctx context.Context, email string) error
}

// storePersister writes through the controller's own stores, profile first.
type storePersister struct {
	flags    FlagStore
	profiles ProfileStore
}

func (p storePersister) SaveLogin(ctx context.Context, email string) error {
	if err := p.profiles.Upsert(ctx, email); err != nil {
		return err
	}
	return p.flags.Write(ctx, true)
}

// SQLitePersister writes the profile and the flag in one transaction.
type SQLitePersister struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLitePersister(db *sql.DB, now func() time.Time) *SQLitePersister {
	return &SQLitePersister{db: db, now: now}
}

func (p *SQLitePersister) SaveLogin(ctx context.Context, email string) error {
	err := dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := profile.NewSQLiteRepository(tx, p.now).Upsert(ctx, email); err != nil {
			return err
		}
		return stores.NewLoginFlagStore(metadata.NewSQLiteRepository(tx)).Write(ctx, true)
	})
	if err != nil {
		return fmt.Errorf("save login: %w", err)
	}
	return nil
}
