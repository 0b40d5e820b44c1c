package service

import (
	"context"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type CreateTaskInput struct {
	Title            string
	Description      string
	TeamID           int64
	UserID           int64
	Priority         domain.TaskPriority
	DueDate          *time.Time
	OriginTemplateID *int64
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
}

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetAllTasks(ctx context.Context, userID int64) ([]*domain.Task, error)
	GetTasksByStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, id, actorUserID int64, input UpdateTaskInput) (*domain.Task, error)
	ChangeTaskStatus(ctx context.Context, id, actorUserID int64, status domain.TaskStatus) (*domain.Task, error)
	DeleteTask(ctx context.Context, id, actorUserID int64) error
	// GetTaskByID возвращает nil, nil если задачи нет
	GetTaskByID(ctx context.Context, id int64) (*domain.Task, error)
}
