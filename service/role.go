package service

import (
	"Quill/models"
	"context"
	"fmt"

	"github.com/google/uuid"
)

var _ IRoleService = (*RoleService)(nil)

type IRoleService interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type RoleService struct {
	Users UserStore
}

func (s *RoleService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	roles, err := s.Users.Roles(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("service.Role.IsAdmin: %w", err)
	}
	return models.NewRoleSet(roles).Has(models.RoleAdmin), nil
}
