package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post 文章，这里只保留统计需要的字段
type Post struct {
	ID        uuid.UUID `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	AuthorID  uuid.UUID `gorm:"column:author_id;type:char(36);not null;index" json:"author_id"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug      string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
