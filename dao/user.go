package dao

import (
	"Quill/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

func (d *UserDAO) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	return d.IsExist(ctx, "id = ?", userID)
}

func (d *UserDAO) Count(ctx context.Context) (int64, error) {
	return d.FindCount(ctx, "")
}

// Roles 查询用户拥有的角色
func (d *UserDAO) Roles(ctx context.Context, userID uuid.UUID) ([]models.Role, error) {
	roles := make([]models.Role, 0)
	err := d.Db.WithContext(ctx).
		Model(&models.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error
	return roles, err
}
