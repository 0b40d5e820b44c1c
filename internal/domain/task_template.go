package domain

import "time"

type TemplatePriority string

const (
	TemplatePriorityHigh   TemplatePriority = "HIGH"
	TemplatePriorityMedium TemplatePriority = "MEDIUM"
	TemplatePriorityLow    TemplatePriority = "LOW"
)

func (p TemplatePriority) Valid() bool {
	return p == TemplatePriorityHigh || p == TemplatePriorityMedium || p == TemplatePriorityLow
}

// TaskTemplate - заготовка для быстрого создания похожих задач
type TaskTemplate struct {
	ID          int64
	Name        string
	Description *string
	Priority    TemplatePriority
	TeamID      *int64
	CreatorID   int64
	Tags        []Tag
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TagIDs возвращает идентификаторы тегов в порядке хранения
func (t *TaskTemplate) TagIDs() []int64 {
	ids := make([]int64, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

// TemplatePreview - проекция шаблона для предзаполнения формы создания задачи
type TemplatePreview struct {
	Name             string
	Description      *string
	Priority         TemplatePriority
	TeamID           *int64
	TagIDs           []int64
	Tags             []Tag
	OriginTemplateID int64
}

type TemplateFilter struct {
	CreatorID int64
	TeamID    *int64
	Search    string
	Page      int
	Limit     int
}

func (f TemplateFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
