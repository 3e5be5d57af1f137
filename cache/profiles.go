package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"seller-scout/internal/shopee"
)

// profileTTL keeps shop profiles fresh enough for a research session
// while sparing the marketplace repeat lookups within one batch.
const profileTTL = 15 * time.Minute

// ProfileCache caches shop profiles in redis. With a nil redis client
// (redis disabled) every Get misses and Set is a no-op, so the pipeline
// works unchanged without redis.
type ProfileCache struct {
	redis *redis.Client
	log   *zap.SugaredLogger
}

func NewProfileCache(client *redis.Client, log *zap.SugaredLogger) *ProfileCache {
	return &ProfileCache{redis: client, log: log}
}

func (c *ProfileCache) Get(ctx context.Context, shopID int64) (shopee.ShopProfile, bool) {
	if c.redis == nil {
		return shopee.ShopProfile{}, false
	}

	raw, err := c.redis.Get(ctx, profileKey(shopID)).Bytes()
	if err != nil {
		return shopee.ShopProfile{}, false
	}

	var p shopee.ShopProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warnw("profile cache decode failed", "shop_id", shopID, "err", err)
		return shopee.ShopProfile{}, false
	}
	return p, true
}

func (c *ProfileCache) Set(ctx context.Context, p shopee.ShopProfile) {
	if c.redis == nil {
		return
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, profileKey(p.ShopID), raw, profileTTL).Err(); err != nil {
		c.log.Warnw("profile cache write failed", "shop_id", p.ShopID, "err", err)
	}
}

func profileKey(shopID int64) string {
	return fmt.Sprintf("seller-scout:shop-profile:%d", shopID)
}

var _ shopee.ProfileCache = (*ProfileCache)(nil)
