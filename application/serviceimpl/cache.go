package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"menu-api/domain/ports"
	"menu-api/pkg/logger"
)

// Cache keys
const (
	cacheKeyOrderableMenus = "menus:orderable"
	cacheKeyCategories     = "categories:all"
)

func cacheKeyCategoryMenus(categoryID uint) string {
	return fmt.Sprintf("menus:category:%d", categoryID)
}

// jsonCache ห่อ CachePort ให้เก็บเป็น JSON
// cache เป็น nil ได้ (ปิด cache) และ error ของ cache ไม่ทำให้ request ล้ม
type jsonCache struct {
	cache ports.CachePort
	ttl   time.Duration
}

func (c jsonCache) get(ctx context.Context, key string, dest any) bool {
	if c.cache == nil {
		return false
	}

	raw, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			logger.WarnContext(ctx, "Cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.WarnContext(ctx, "Cache entry is corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (c jsonCache) set(ctx context.Context, key string, value any) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.WarnContext(ctx, "Cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
		logger.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
	}
}

func (c jsonCache) invalidate(ctx context.Context, keys ...string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Del(ctx, keys...); err != nil {
		logger.WarnContext(ctx, "Cache invalidation failed", "keys", keys, "error", err)
	}
}
