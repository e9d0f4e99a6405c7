package middleware

import (
	"Quill/config"
	"Quill/dao/cache"
	"Quill/pkg/log"
	"Quill/pkg/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimit 写接口按客户端 IP 限流，redis 异常时放行
func RateLimit(limiter *cache.RateLimiter, conf *config.RateLimit) gin.HandlerFunc {
	window := time.Duration(conf.WindowSeconds) * time.Second
	return func(c *gin.Context) {
		if !limiter.Enabled() {
			c.Next()
			return
		}
		ok, n, err := limiter.Allow(c.Request.Context(), c.ClientIP(), conf.Limit, window)
		if err != nil {
			log.L.Warn("rate limiter error", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			log.L.Info("rate limited", zap.String("ip", c.ClientIP()), zap.Int64("count", n))
			response.Abort(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
