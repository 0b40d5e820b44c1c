package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

// notFound подменяет repository.ErrNotFound доменной ошибкой, остальные ошибки не трогает
func notFound(err error, domainErr *domain.DomainError) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domainErr
	}
	return err
}

func getUser(ctx context.Context, userRepo repository.UserRepository, userID int64) (*domain.User, error) {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return user, nil
}
