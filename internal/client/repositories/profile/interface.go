package profile

import (
	"context"
	"errors"

	"github.com/healthguidelab/keto365/internal/client/models"
)

var ErrEmptyEmail = errors.New("email must not be empty")

// Repository is the UserProfileStore contract.
type Repository interface {
	// Upsert replaces the singleton profile with email and a new CreatedAt.
	Upsert(ctx context.Context, email string) error

	// Get returns the current profile, or nil if it was never written.
	Get(ctx context.Context) (*models.UserProfile, error)
}
