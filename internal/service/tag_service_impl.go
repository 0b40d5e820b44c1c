package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type tagService struct {
	tagRepo repository.TagRepository
	log     *slog.Logger
}

func NewTagService(tagRepo repository.TagRepository, log *slog.Logger) TagService {
	return &tagService{
		tagRepo: tagRepo,
		log:     log,
	}
}

func (s *tagService) CreateTag(ctx context.Context, label string) (*domain.Tag, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, domain.NewValidationError("label", "is required")
	}

	tag := &domain.Tag{Label: label}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrDuplicateTag
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "tag created", "tag_id", tag.ID)
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.tagRepo.List(ctx)
}
