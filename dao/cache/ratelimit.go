package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter 固定窗口计数：INCR 后首次设置过期
type RateLimiter struct {
	redis *redis.Client
}

func NewRateLimiter(redis *redis.Client) *RateLimiter {
	return &RateLimiter{redis: redis}
}

// Enabled 未配置 redis 时限流关闭
func (r *RateLimiter) Enabled() bool {
	return r != nil && r.redis != nil
}

// Allow 返回是否放行以及窗口内当前计数
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error) {
	k := r.key(key)
	pipe := r.redis.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	n := incr.Val()
	return n <= limit, n, nil
}

func (r *RateLimiter) key(key string) string {
	return fmt.Sprintf("rl:stats:%s", key)
}
