package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// AddressCache implements ports.AddressCache on Redis. It memoizes
// owner → default wallet address so routine lookups skip the
// decrypt/import round trip. Addresses never change for a wallet, so
// entries have no TTL.
type AddressCache struct {
	client *goredis.Client
	prefix string
}

// NewAddressCache creates a new Redis-backed address cache.
func NewAddressCache(client *goredis.Client) *AddressCache {
	return &AddressCache{
		client: client,
		prefix: "walletaddr:",
	}
}

// Get returns the cached address for ownerID, or "" on a miss.
func (c *AddressCache) Get(ctx context.Context, ownerID string) (string, error) {
	val, err := c.client.Get(ctx, c.prefix+ownerID).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis address get: %w", err)
	}
	return val, nil
}

// Set stores the address for ownerID.
func (c *AddressCache) Set(ctx context.Context, ownerID string, address string) error {
	if err := c.client.Set(ctx, c.prefix+ownerID, address, 0).Err(); err != nil {
		return fmt.Errorf("redis address set: %w", err)
	}
	return nil
}
