package middleware

import (
	"Quill/pkg/context"
	"Quill/pkg/log"
	"Quill/pkg/snowflake"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// GinZap 访问日志，同时生成请求 ID
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = snowflake.GenString()
		}
		c.Set(context.CtxRequestID, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			log.L.Error("request", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		log.L.Info("request", fields...)
	}
}
