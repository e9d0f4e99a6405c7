package middleware

import (
	"net/http"
	"strings"

	"Quill/pkg/context"
	"Quill/pkg/jwt"
	"Quill/pkg/log"
	"Quill/pkg/response"
	"Quill/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer access token，成功后写入 user_id
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			log.L.Info("invalid token", zap.Error(err))
			c.Header("WWW-Authenticate", "Bearer")
			response.Abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}

// AdminRequired 需在 Auth 之后使用
func AdminRequired(roles service.IRoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		ok, err := roles.IsAdmin(c.Request.Context(), uid)
		if err != nil {
			log.L.Error("check admin role", zap.String("user_id", uid.String()), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !ok {
			response.Abort(c, http.StatusForbidden, "Access forbidden. Admin privileges required.")
			return
		}

		c.Next()
	}
}
