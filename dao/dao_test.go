package dao

import (
	"Quill/models"
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedPost(t *testing.T, db *gorm.DB, author uuid.UUID) *models.Post {
	t.Helper()
	p := &models.Post{AuthorID: author, Title: "post", Slug: uuid.NewString()}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedStat(t *testing.T, db *gorm.DB, postID uuid.UUID, views, likes int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Stat{PostID: postID, Views: views, Likes: likes}).Error)
}

var ctx = context.Background()
