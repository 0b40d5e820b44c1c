package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, name string, role domain.UserRole) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
