package service

import (
	"Quill/models"
	"Quill/pkg/metrics"
	"Quill/types"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
	ErrStatNotFound = errors.New("stat not found")
)

var _ IStatService = (*StatService)(nil)

type IStatService interface {
	// GetOrCreate 获取文章计数，不存在时创建零值记录
	GetOrCreate(ctx context.Context, postID uuid.UUID) (*models.Stat, error)
	PostStats(ctx context.Context, postID uuid.UUID) (*types.PostStats, error)
	IncrementViews(ctx context.Context, postID uuid.UUID) (*models.Stat, error)
	IncrementLikes(ctx context.Context, postID uuid.UUID) (*models.Stat, error)
	// DecrementLikes 点赞数不会小于 0，为 0 时原样返回
	DecrementLikes(ctx context.Context, postID uuid.UUID) (*models.Stat, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*types.UserStats, error)
	SiteStats(ctx context.Context) (*types.SiteStats, error)
	DeletePostStats(ctx context.Context, postID uuid.UUID) error
}

type StatService struct {
	Stats StatStore
	Posts PostStore
	Users UserStore
}

func (s *StatService) GetOrCreate(ctx context.Context, postID uuid.UUID) (*models.Stat, error) {
	stat, err := s.Stats.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.GetOrCreate: %w", err)
	}
	if stat != nil {
		return stat, nil
	}

	if err := s.Stats.CreateIfAbsent(ctx, postID); err != nil {
		return nil, fmt.Errorf("service.Stat.GetOrCreate: %w", err)
	}
	return s.reload(ctx, postID)
}

func (s *StatService) PostStats(ctx context.Context, postID uuid.UUID) (*types.PostStats, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	stat, err := s.GetOrCreate(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &types.PostStats{
		PostID: stat.PostID,
		Views:  stat.Views,
		Likes:  stat.Likes,
	}, nil
}

func (s *StatService) IncrementViews(ctx context.Context, postID uuid.UUID) (*models.Stat, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.GetOrCreate(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.Stats.IncrViews(ctx, postID); err != nil {
		return nil, fmt.Errorf("service.Stat.IncrementViews: %w", err)
	}
	metrics.StatWrites.WithLabelValues(metrics.KindView).Inc()
	return s.reload(ctx, postID)
}

func (s *StatService) IncrementLikes(ctx context.Context, postID uuid.UUID) (*models.Stat, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.GetOrCreate(ctx, postID); err != nil {
		return nil, err
	}
	if err := s.Stats.IncrLikes(ctx, postID); err != nil {
		return nil, fmt.Errorf("service.Stat.IncrementLikes: %w", err)
	}
	metrics.StatWrites.WithLabelValues(metrics.KindLike).Inc()
	return s.reload(ctx, postID)
}

func (s *StatService) DecrementLikes(ctx context.Context, postID uuid.UUID) (*models.Stat, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	stat, err := s.GetOrCreate(ctx, postID)
	if err != nil {
		return nil, err
	}
	if stat.Likes <= 0 {
		return stat, nil
	}

	wrote, err := s.Stats.DecrLikes(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.DecrementLikes: %w", err)
	}
	// wrote 为 false 说明并发下已被减到 0
	if wrote {
		metrics.StatWrites.WithLabelValues(metrics.KindUnlike).Inc()
	}
	return s.reload(ctx, postID)
}

func (s *StatService) UserStats(ctx context.Context, userID uuid.UUID) (*types.UserStats, error) {
	exist, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.UserStats: %w", err)
	}
	if !exist {
		return nil, ErrUserNotFound
	}

	postIDs, err := s.Posts.IDsByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.UserStats: %w", err)
	}
	views, likes, err := s.Stats.SumByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.UserStats: %w", err)
	}

	return &types.UserStats{
		UserID:     userID,
		TotalPosts: int64(len(postIDs)),
		TotalViews: views,
		TotalLikes: likes,
	}, nil
}

func (s *StatService) SiteStats(ctx context.Context) (*types.SiteStats, error) {
	posts, err := s.Posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.SiteStats: %w", err)
	}
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.SiteStats: %w", err)
	}
	views, likes, err := s.Stats.SumAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Stat.SiteStats: %w", err)
	}

	return &types.SiteStats{
		TotalPosts: posts,
		TotalUsers: users,
		TotalViews: views,
		TotalLikes: likes,
	}, nil
}

func (s *StatService) DeletePostStats(ctx context.Context, postID uuid.UUID) error {
	deleted, err := s.Stats.DeleteByPostID(ctx, postID)
	if err != nil {
		return fmt.Errorf("service.Stat.DeletePostStats: %w", err)
	}
	if !deleted {
		return ErrStatNotFound
	}
	metrics.StatWrites.WithLabelValues(metrics.KindDelete).Inc()
	return nil
}

func (s *StatService) ensurePost(ctx context.Context, postID uuid.UUID) error {
	exist, err := s.Posts.Exists(ctx, postID)
	if err != nil {
		return fmt.Errorf("service.Stat: check post: %w", err)
	}
	if !exist {
		return ErrPostNotFound
	}
	return nil
}

func (s *StatService) reload(ctx context.Context, postID uuid.UUID) (*models.Stat, error) {
	stat, err := s.Stats.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("service.Stat: reload: %w", err)
	}
	if stat == nil {
		return nil, fmt.Errorf("service.Stat: reload %s: %w", postID, ErrStatNotFound)
	}
	return stat, nil
}
