package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TaskTemplateRepository interface {
	// Create сохраняет шаблон вместе со связями на теги в одной транзакции
	Create(ctx context.Context, template *domain.TaskTemplate) error
	GetByID(ctx context.Context, id int64) (*domain.TaskTemplate, error)
	List(ctx context.Context, filter domain.TemplateFilter) ([]*domain.TaskTemplate, int, error)
	// Update сохраняет поля шаблона; при replaceTags набор тегов заменяется целиком
	Update(ctx context.Context, template *domain.TaskTemplate, replaceTags bool) error
	Delete(ctx context.Context, id int64) error
	ExistsByNameAndCreator(ctx context.Context, name string, creatorID int64, excludeID int64) (bool, error)
}
