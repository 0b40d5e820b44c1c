package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type CreateTemplateInput struct {
	Name        string
	Description *string
	Priority    domain.TemplatePriority
	CreatorID   int64
	TeamID      *int64
	TagIDs      []int64
}

// UpdateTemplateInput - частичное обновление: nil поле не меняется.
// TagIDs != nil заменяет набор тегов целиком, пустой срез очищает его.
type UpdateTemplateInput struct {
	Name        *string
	Description *string
	Priority    *domain.TemplatePriority
	TeamID      *int64
	TagIDs      []int64
}

type TaskTemplateService interface {
	CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.TaskTemplate, error)
	ListTemplates(ctx context.Context, userID int64, teamID *int64, search string, page, limit int) ([]*domain.TaskTemplate, int, error)
	GetTemplateByID(ctx context.Context, id, userID int64) (*domain.TaskTemplate, error)
	UpdateTemplate(ctx context.Context, id, userID int64, input UpdateTemplateInput) (*domain.TaskTemplate, error)
	DeleteTemplate(ctx context.Context, id, userID int64) error
	GetTemplatePreview(ctx context.Context, id, userID int64) (*domain.TemplatePreview, error)
}
