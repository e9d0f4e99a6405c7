package context

import (
	"Quill/pkg/log"
	"Quill/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CtxUserID    = "user_id"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				if be.Err != nil {
					log.L.Error("request failed",
						zap.String("path", c.FullPath()),
						zap.String("request_id", c.GetString(CtxRequestID)),
						zap.Error(be.Err),
					)
				}
				response.Fail(c, response.Status(be), be.Msg)
				return
			}
			log.L.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(CtxRequestID)),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return uuid.Nil, errors.New("user_id 不存在")
	}

	uid, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// ParamUUID 解析路径参数，格式错误返回 400
func ParamUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
