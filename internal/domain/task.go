package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDIENTE"
	TaskStatusInProgress TaskStatus = "EN_CURSO"
	TaskStatusFinished   TaskStatus = "FINALIZADA"
	TaskStatusCancelled  TaskStatus = "CANCELADA"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusFinished, TaskStatusCancelled:
		return true
	}
	return false
}

// IsTerminal сообщает, что задача закрыта и больше не изменяется
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusFinished || s == TaskStatusCancelled
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "alta"
	TaskPriorityMedium TaskPriority = "media"
	TaskPriorityLow    TaskPriority = "baja"
)

func (p TaskPriority) Valid() bool {
	return p == TaskPriorityHigh || p == TaskPriorityMedium || p == TaskPriorityLow
}

type Task struct {
	ID               int64
	Title            string
	Description      string
	TeamID           int64
	CreatorID        int64
	Priority         TaskPriority
	Status           TaskStatus
	DueDate          *time.Time
	OriginTemplateID *int64
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
