package handler

import (
	"Quill/config"
	"Quill/dao/cache"
	"Quill/middleware"
	"Quill/pkg/context"
	"Quill/pkg/response"
	"Quill/service"
	"Quill/types"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Stat struct {
	StatService service.IStatService
	Limiter     *cache.RateLimiter
	Config      *config.Config
}

func (s *Stat) RegisterRouter(r gin.IRouter) {
	limit := middleware.RateLimit(s.Limiter, s.Config.RateLimit)
	g := r.Group("/v1/stats")
	g.GET("/posts/:post_id", context.Wrap(s.GetPostStats))
	g.GET("/users/:user_id", context.Wrap(s.GetUserStats))
	g.GET("/site", context.Wrap(s.GetSiteStats))
	g.POST("/posts/:post_id/view", limit, context.Wrap(s.RecordView))
	g.POST("/posts/:post_id/like", limit, context.Wrap(s.RecordLike))
	g.DELETE("/posts/:post_id/like", limit, context.Wrap(s.RemoveLike))
}

func (s *Stat) GetPostStats(c *gin.Context) error {
	postID, err := context.ParamUUID(c, "post_id")
	if err != nil {
		return err
	}

	stats, err := s.StatService.PostStats(c.Request.Context(), postID)
	if err != nil {
		return statError(err)
	}
	response.JSON(c, http.StatusOK, stats)
	return nil
}

func (s *Stat) GetUserStats(c *gin.Context) error {
	userID, err := context.ParamUUID(c, "user_id")
	if err != nil {
		return err
	}

	stats, err := s.StatService.UserStats(c.Request.Context(), userID)
	if err != nil {
		return statError(err)
	}
	response.JSON(c, http.StatusOK, stats)
	return nil
}

func (s *Stat) GetSiteStats(c *gin.Context) error {
	stats, err := s.StatService.SiteStats(c.Request.Context())
	if err != nil {
		return statError(err)
	}
	response.JSON(c, http.StatusOK, stats)
	return nil
}

func (s *Stat) RecordView(c *gin.Context) error {
	postID, err := context.ParamUUID(c, "post_id")
	if err != nil {
		return err
	}

	stat, err := s.StatService.IncrementViews(c.Request.Context(), postID)
	if err != nil {
		return statError(err)
	}
	response.JSON(c, http.StatusCreated, types.RecordViewResponse{
		Message: "View recorded successfully",
		Views:   stat.Views,
	})
	return nil
}

func (s *Stat) RecordLike(c *gin.Context) error {
	postID, err := context.ParamUUID(c, "post_id")
	if err != nil {
		return err
	}

	stat, err := s.StatService.IncrementLikes(c.Request.Context(), postID)
	if err != nil {
		return statError(err)
	}
	response.JSON(c, http.StatusCreated, types.RecordLikeResponse{
		Message: "Like recorded successfully",
		Likes:   stat.Likes,
	})
	return nil
}

func (s *Stat) RemoveLike(c *gin.Context) error {
	postID, err := context.ParamUUID(c, "post_id")
	if err != nil {
		return err
	}

	if _, err := s.StatService.DecrementLikes(c.Request.Context(), postID); err != nil {
		return statError(err)
	}
	response.NoContent(c)
	return nil
}

// statError 业务错误转换为 HTTP 错误
func statError(err error) error {
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return response.NewError(http.StatusNotFound, "Post not found")
	case errors.Is(err, service.ErrUserNotFound):
		return response.NewError(http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrStatNotFound):
		return response.NewError(http.StatusNotFound, "Stat not found")
	default:
		return response.Wrap(http.StatusInternalServerError, "Internal server error", err)
	}
}
