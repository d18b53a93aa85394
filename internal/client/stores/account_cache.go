package stores

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/healthguidelab/keto365/internal/client/models"
	"github.com/healthguidelab/keto365/internal/client/repositories/metadata"
)

const DeviceAccountKey = "device_account"

// AccountCache remembers the last account the identity provider signed in
// on this device.
type AccountCache struct {
	repo metadata.Repository
}

func NewAccountCache(repo metadata.Repository) *AccountCache {
	return &AccountCache{repo: repo}
}

// Last returns the cached account, or nil if none was recorded.
func (c *AccountCache) Last(ctx context.Context) (*models.DeviceAccount, error) {
	raw, err := c.repo.Get(ctx, DeviceAccountKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var acc models.DeviceAccount
	if err := json.Unmarshal(raw, &acc); err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", DeviceAccountKey, err)
	}
	return &acc, nil
}

func (c *AccountCache) Remember(ctx context.Context, acc models.DeviceAccount) error {
	raw, err := json.Marshal(acc)
	if err != nil {
		return err
	}
	return c.repo.Set(ctx, DeviceAccountKey, raw)
}
