package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

type Role struct {
	ID   uuid.UUID `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RoleSet 角色名集合，名称统一小写
type RoleSet map[string]struct{}

func NewRoleSet(roles []Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[strings.ToLower(r.Name)] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}
