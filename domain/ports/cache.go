package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss ไม่มี key ใน cache
var ErrCacheMiss = errors.New("cache miss")

// CachePort cache แบบ key/value สำหรับรายการเมนู
type CachePort interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
