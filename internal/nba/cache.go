package nba

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/courtside-labs/courtside/internal/model"
)

// ByteCache is the slice of the key-value store the feed cache needs.
// The Redis client satisfies it; tests use an in-memory map.
type ByteCache interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error
}

const (
	scheduleCacheKey = "nba:schedule"
	scheduleCacheTTL = 15 * time.Minute
)

// CachedClient serves the schedule feed through a cache so a burst of
// requests does not hammer the upstream CDN. Cache failures degrade to a
// direct fetch, never to a request failure.
type CachedClient struct {
	client *Client
	cache  ByteCache
}

func NewCachedClient(client *Client, cache ByteCache) *CachedClient {
	return &CachedClient{client: client, cache: cache}
}

func (c *CachedClient) FetchScheduleRaw(ctx context.Context) ([]byte, error) {
	if c.cache != nil {
		if cached, err := c.cache.GetBytes(ctx, scheduleCacheKey); err == nil && len(cached) > 0 {
			return cached, nil
		} else if err != nil {
			log.Warn().Err(err).Msg("schedule cache read failed, fetching upstream")
		}
	}

	raw, err := c.client.FetchScheduleRaw(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.SetBytes(ctx, scheduleCacheKey, raw, scheduleCacheTTL); err != nil {
			log.Warn().Err(err).Msg("schedule cache write failed")
		}
	}
	return raw, nil
}

func (c *CachedClient) FetchSchedule(ctx context.Context) (model.WeekSchedule, error) {
	raw, err := c.FetchScheduleRaw(ctx)
	if err != nil {
		return model.WeekSchedule{}, err
	}
	return ParseSchedule(raw)
}
