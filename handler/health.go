package handler

import (
	"Quill/pkg/log"
	"Quill/pkg/response"
	"Quill/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Health struct {
	Db *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *Health) Healthz(c *gin.Context) {
	sqlDB, err := h.Db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.L.Error("health check failed", zap.Error(err))
		response.JSON(c, http.StatusServiceUnavailable, types.HealthResponse{Status: "unavailable"})
		return
	}
	response.JSON(c, http.StatusOK, types.HealthResponse{Status: "ok"})
}
