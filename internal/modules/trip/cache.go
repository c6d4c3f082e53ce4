// README: Itinerary result cache backed by Redis, keyed by a request hash.
package trip

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripgen/internal/itinerary"
)

const cacheKeyPrefix = "tripgen:itinerary:"

// Cache stores generated results so identical requests within the TTL skip
// the model entirely.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redis, ttl: ttl}
}

// Get returns the cached result for key, or nil on a miss.
func (c *Cache) Get(ctx context.Context, key string) (*itinerary.Result, error) {
	raw, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res itinerary.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Cache) Set(ctx context.Context, key string, res itinerary.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, raw, c.ttl).Err()
}

// cacheKey derives a stable key from every request field that influences the
// generated output.
func cacheKey(req itinerary.Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s|%s|%s|%s",
		req.Destination, req.Travelers, req.StartDate, req.EndDate,
		req.Preferences, req.Budget, req.TravelWith)
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
