package middleware

import (
	"Quill/config"
	"Quill/pkg/response"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "X-API-Key"

// APIKey 本地环境或未配置 key 时跳过
func APIKey(app *config.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app.IsLocal() || app.ApiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(app.ApiKey)) != 1 {
			response.Abort(c, http.StatusUnauthorized, "Invalid or missing API Key")
			return
		}
		c.Next()
	}
}
