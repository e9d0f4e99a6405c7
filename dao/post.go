package dao

import (
	"Quill/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

func (d *PostDAO) Exists(ctx context.Context, postID uuid.UUID) (bool, error) {
	return d.IsExist(ctx, "id = ?", postID)
}

func (d *PostDAO) Count(ctx context.Context) (int64, error) {
	return d.FindCount(ctx, "")
}

// IDsByAuthor 查询作者的全部文章 ID
func (d *PostDAO) IDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	err := d.Model(ctx).
		Where("author_id = ?", authorID).
		Pluck("id", &ids).Error
	return ids, err
}
