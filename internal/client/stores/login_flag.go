package stores

import (
	"context"
	"fmt"
	"iter"
	"strconv"

	"github.com/healthguidelab/keto365/internal/client/repositories/metadata"
)

// HasLoggedOnceKey is the metadata key holding the login flag.
const HasLoggedOnceKey = "has_logged_once"

// LoginFlagStore records whether a sign-in has ever completed on this
// device. The flag defaults to false and is only ever raised.
type LoginFlagStore struct {
	repo metadata.Repository
}

func NewLoginFlagStore(repo metadata.Repository) *LoginFlagStore {
	return &LoginFlagStore{repo: repo}
}

// Read returns the current flag; an absent key reads as false.
func (s *LoginFlagStore) Read(ctx context.Context) (bool, error) {
	raw, err := s.repo.Get(ctx, HasLoggedOnceKey)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", HasLoggedOnceKey, raw, err)
	}
	return v, nil
}

// Write stores value. Writing the same value again is a no-op in effect.
func (s *LoginFlagStore) Write(ctx context.Context, value bool) error {
	return s.repo.Set(ctx, HasLoggedOnceKey, []byte(strconv.FormatBool(value)))
}

// Values is a lazy sequence over the flag. Each iteration reads the
// current snapshot, so ranging over it again re-reads the store.
func (s *LoginFlagStore) Values(ctx context.Context) iter.Seq2[bool, error] {
	return func(yield func(bool, error) bool) {
		v, err := s.Read(ctx)
		yield(v, err)
	}
}
