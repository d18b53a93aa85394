package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/healthguidelab/keto365/internal/client/models"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory metadata.Repository.
type memRepo struct {
	data   map[string][]byte
	getErr error
	setErr error
	sets   int
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.data[key], nil
}

func (m *memRepo) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func TestLoginFlag_DefaultsToFalse(t *testing.T) {
	s := NewLoginFlagStore(newMemRepo())

	v, err := s.Read(context.Background())
	require.NoError(t, err)
	require.False(t, v)
}

func TestLoginFlag_WriteTrueTwice_ReadsTrue(t *testing.T) {
	repo := newMemRepo()
	s := NewLoginFlagStore(repo)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, true))
	require.NoError(t, s.Write(ctx, true))

	v, err := s.Read(ctx)
	require.NoError(t, err)
	require.True(t, v)
	require.Equal(t, []byte("true"), repo.data[HasLoggedOnceKey])
}

func TestLoginFlag_CorruptValue(t *testing.T) {
	repo := newMemRepo()
	repo.data[HasLoggedOnceKey] = []byte("maybe")

	_, err := NewLoginFlagStore(repo).Read(context.Background())
	require.ErrorContains(t, err, "invalid has_logged_once value")
}

func TestLoginFlag_PropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk gone")
	repo := newMemRepo()
	repo.getErr = boom
	repo.setErr = boom
	s := NewLoginFlagStore(repo)

	_, err := s.Read(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Write(context.Background(), true), boom)
}

func TestLoginFlag_ValuesIsRestartable(t *testing.T) {
	s := NewLoginFlagStore(newMemRepo())
	ctx := context.Background()

	collect := func() []bool {
		var out []bool
		for v, err := range s.Values(ctx) {
			require.NoError(t, err)
			out = append(out, v)
		}
		return out
	}

	require.Equal(t, []bool{false}, collect())
	require.NoError(t, s.Write(ctx, true))
	require.Equal(t, []bool{true}, collect())
}

func TestAccountCache_RoundTrip(t *testing.T) {
	c := NewAccountCache(newMemRepo())
	ctx := context.Background()

	acc, err := c.Last(ctx)
	require.NoError(t, err)
	require.Nil(t, acc)

	when := time.Date(2025, 5, 4, 3, 2, 1, 0, time.UTC)
	require.NoError(t, c.Remember(ctx, models.DeviceAccount{Email: "u@x.com", LastSignedIn: when}))

	acc, err = c.Last(ctx)
	require.NoError(t, err)
	require.Equal(t, "u@x.com", acc.Email)
	require.True(t, when.Equal(acc.LastSignedIn))
}

func TestAccountCache_CorruptValue(t *testing.T) {
	repo := newMemRepo()
	repo.data[DeviceAccountKey] = []byte("{not json")

	_, err := NewAccountCache(repo).Last(context.Background())
	require.Error(t, err)
}
