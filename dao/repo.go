package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用单表操作，各 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Model 绑定当前表模型
func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// FindByWhere 按条件查询一条，不存在返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// IsExist 按条件判断是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	if err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindCount 按条件计数，where 为空时统计全表
func (r *Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	q := r.Model(ctx)
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
