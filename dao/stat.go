package dao

import (
	"Quill/models"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatDAO struct {
	Repo[models.Stat]
}

func NewStatDAO(db *gorm.DB) *StatDAO {
	return &StatDAO{Repo: NewRepo[models.Stat](db)}
}

// GetByPostID 查询文章计数，不存在返回 nil, nil
func (d *StatDAO) GetByPostID(ctx context.Context, postID uuid.UUID) (*models.Stat, error) {
	stat, err := d.FindByWhere(ctx, "post_id = ?", postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return stat, nil
}

// CreateIfAbsent 插入零值计数，post_id 冲突时忽略
func (d *StatDAO) CreateIfAbsent(ctx context.Context, postID uuid.UUID) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&models.Stat{PostID: postID}).Error
}

// IncrViews 浏览数原子自增
func (d *StatDAO) IncrViews(ctx context.Context, postID uuid.UUID) error {
	return d.incr(ctx, postID, "views")
}

// IncrLikes 点赞数原子自增
func (d *StatDAO) IncrLikes(ctx context.Context, postID uuid.UUID) error {
	return d.incr(ctx, postID, "likes")
}

func (d *StatDAO) incr(ctx context.Context, postID uuid.UUID, column string) error {
	return d.Model(ctx).
		Where("post_id = ?", postID).
		Updates(map[string]any{
			column:       gorm.Expr(column + " + ?", 1),
			"updated_at": time.Now(),
		}).Error
}

// DecrLikes 点赞数减一，已经为 0 时不更新，返回是否发生写入
func (d *StatDAO) DecrLikes(ctx context.Context, postID uuid.UUID) (bool, error) {
	res := d.Model(ctx).
		Where("post_id = ? AND likes > 0", postID).
		Updates(map[string]any{
			"likes":      gorm.Expr("likes - ?", 1),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type statSum struct {
	Views int64
	Likes int64
}

// SumByPostIDs 汇总指定文章的浏览/点赞
func (d *StatDAO) SumByPostIDs(ctx context.Context, postIDs []uuid.UUID) (int64, int64, error) {
	if len(postIDs) == 0 {
		return 0, 0, nil
	}
	return d.sum(d.Model(ctx).Where("post_id IN ?", postIDs))
}

// SumAll 汇总全站浏览/点赞
func (d *StatDAO) SumAll(ctx context.Context) (int64, int64, error) {
	return d.sum(d.Model(ctx))
}

func (d *StatDAO) sum(q *gorm.DB) (int64, int64, error) {
	var row statSum
	err := q.Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(likes), 0) AS likes").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Views, row.Likes, nil
}

// DeleteByPostID 删除文章计数，返回是否删除了记录
func (d *StatDAO) DeleteByPostID(ctx context.Context, postID uuid.UUID) (bool, error) {
	res := d.Db.WithContext(ctx).Where("post_id = ?", postID).Delete(&models.Stat{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
