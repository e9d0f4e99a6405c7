package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stat 文章浏览/点赞计数
// 对应表 stats，每篇文章至多一行
type Stat struct {
	ID        uuid.UUID `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"column:post_id;type:char(36);not null;uniqueIndex" json:"post_id"`
	Views     int64     `gorm:"column:views;not null;default:0" json:"views"`
	Likes     int64     `gorm:"column:likes;not null;default:0" json:"likes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Stat) TableName() string {
	return "stats"
}

func (s *Stat) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
