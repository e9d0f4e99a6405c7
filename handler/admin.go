package handler

import (
	"Quill/config"
	"Quill/middleware"
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Admin struct {
	StatService service.IStatService
	RoleService service.IRoleService
	Config      *config.Config
}

func (a *Admin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/admin")
	g.Use(middleware.Auth([]byte(a.Config.Jwt.Secret)), middleware.AdminRequired(a.RoleService))
	g.GET("/stats", context.Wrap(a.GetStats))
	g.DELETE("/stats/posts/:post_id", context.Wrap(a.DeletePostStats))
}

func (a *Admin) GetStats(c *gin.Context) error {
	stats, err := a.StatService.SiteStats(c.Request.Context())
	if err != nil {
		return response.Wrap(http.StatusInternalServerError, "Internal server error while fetching statistics", err)
	}
	response.JSON(c, http.StatusOK, stats)
	return nil
}

func (a *Admin) DeletePostStats(c *gin.Context) error {
	postID, err := context.ParamUUID(c, "post_id")
	if err != nil {
		return err
	}

	if err := a.StatService.DeletePostStats(c.Request.Context(), postID); err != nil {
		return statError(err)
	}
	response.NoContent(c)
	return nil
}
