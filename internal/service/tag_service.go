package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TagService interface {
	CreateTag(ctx context.Context, label string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
}
