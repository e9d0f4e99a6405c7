package service

import (
	"Quill/dao"
	"Quill/models"
	"context"

	"github.com/google/uuid"
)

var (
	_ StatStore = (*dao.StatDAO)(nil)
	_ PostStore = (*dao.PostDAO)(nil)
	_ UserStore = (*dao.UserDAO)(nil)
)

// StatStore stats 表读写
type StatStore interface {
	GetByPostID(ctx context.Context, postID uuid.UUID) (*models.Stat, error)
	CreateIfAbsent(ctx context.Context, postID uuid.UUID) error
	IncrViews(ctx context.Context, postID uuid.UUID) error
	IncrLikes(ctx context.Context, postID uuid.UUID) error
	DecrLikes(ctx context.Context, postID uuid.UUID) (bool, error)
	SumByPostIDs(ctx context.Context, postIDs []uuid.UUID) (views int64, likes int64, err error)
	SumAll(ctx context.Context) (views int64, likes int64, err error)
	DeleteByPostID(ctx context.Context, postID uuid.UUID) (bool, error)
}

type PostStore interface {
	Exists(ctx context.Context, postID uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
	IDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)
}

type UserStore interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
	Roles(ctx context.Context, userID uuid.UUID) ([]models.Role, error)
}
