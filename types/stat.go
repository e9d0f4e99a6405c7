package types

import "github.com/google/uuid"

// PostStats 单篇文章统计
type PostStats struct {
	PostID uuid.UUID `json:"post_id"`
	Views  int64     `json:"views"`
	Likes  int64     `json:"likes"`
}

// UserStats 作者维度汇总
type UserStats struct {
	UserID     uuid.UUID `json:"user_id"`
	TotalPosts int64     `json:"total_posts"`
	TotalViews int64     `json:"total_views"`
	TotalLikes int64     `json:"total_likes"`
}

// SiteStats 全站汇总
type SiteStats struct {
	TotalPosts int64 `json:"total_posts"`
	TotalUsers int64 `json:"total_users"`
	TotalViews int64 `json:"total_views"`
	TotalLikes int64 `json:"total_likes"`
}

type RecordViewResponse struct {
	Message string `json:"message"`
	Views   int64  `json:"views"`
}

type RecordLikeResponse struct {
	Message string `json:"message"`
	Likes   int64  `json:"likes"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
