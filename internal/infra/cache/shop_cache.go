package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/barberfactory/barberfactory-api/internal/dto"
)

const (
	shopListKey = "shops:all"
	shopListTTL = 60 * time.Second
)

// ShopListCache keeps the shop discovery list in redis for a short TTL.
// Every write path through the shop profile invalidates it. A nil client
// degrades to a pass-through.
type ShopListCache struct {
	rdb *redis.Client
}

func NewShopListCache(rdb *redis.Client) *ShopListCache {
	return &ShopListCache{rdb: rdb}
}

func (c *ShopListCache) Get(ctx context.Context) ([]dto.ShopSummaryDTO, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, shopListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var shops []dto.ShopSummaryDTO
	if err := json.Unmarshal(raw, &shops); err != nil {
		return nil, false
	}
	return shops, true
}

func (c *ShopListCache) Set(ctx context.Context, shops []dto.ShopSummaryDTO) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(shops)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, shopListKey, raw, shopListTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("shop list cache write failed")
	}
}

func (c *ShopListCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, shopListKey).Err(); err != nil {
		log.Warn().Err(err).Msg("shop list cache invalidation failed")
	}
}
