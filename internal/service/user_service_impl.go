package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	log      *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, log *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

// CreateUser регистрирует пользователя, роль по умолчанию - member
func (s *userService) CreateUser(ctx context.Context, name string, role domain.UserRole) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	if role == "" {
		role = domain.UserRoleMember
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role", "must be one of member, admin")
	}

	user := &domain.User{
		Name: name,
		Role: role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return getUser(ctx, s.userRepo, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}
