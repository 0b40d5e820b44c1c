package handler

import "time"

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type CreateTemplateRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	DefaultPriority string  `json:"defaultPriority"`
	UserID          int64   `json:"userId" validate:"required,gt=0"`
	TeamID          *int64  `json:"teamId" validate:"omitempty,gt=0"`
	TagIDs          []int64 `json:"tagIds" validate:"omitempty,dive,gt=0"`
}

type UpdateTemplateRequest struct {
	UserID      int64   `json:"userId" validate:"required,gt=0"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	TeamID      *int64  `json:"teamId" validate:"omitempty,gt=0"`
	TagIDs      []int64 `json:"tagIds" validate:"omitempty,dive,gt=0"`
}

// ActorRequest - тело DELETE-запросов, где нужен только инициатор
type ActorRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

type TagResponse struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type TemplateResponse struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Description     *string       `json:"description"`
	DefaultPriority string        `json:"defaultPriority"`
	TeamID          *int64        `json:"teamId"`
	CreatorID       int64         `json:"creatorId"`
	TagIDs          []int64       `json:"tagIds"`
	Tags            []TagResponse `json:"tags"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

type TemplatePreviewResponse struct {
	Name             string        `json:"name"`
	Description      *string       `json:"description"`
	Priority         string        `json:"priority"`
	TeamID           *int64        `json:"teamId,omitempty"`
	TagIDs           []int64       `json:"tagIds"`
	Tags             []TagResponse `json:"tags"`
	OriginTemplateID int64         `json:"originTemplateId"`
}

type CreateTaskRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	TeamID           int64      `json:"teamId" validate:"required,gt=0"`
	UserID           int64      `json:"userId" validate:"required,gt=0"`
	Priority         string     `json:"priority"`
	DueDate          *DueDate   `json:"dueDate"`
	OriginTemplateID *int64     `json:"originTemplateId" validate:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	UserID      int64   `json:"userId" validate:"required,gt=0"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

type ChangeTaskStatusRequest struct {
	UserID int64  `json:"userId" validate:"required,gt=0"`
	Status string `json:"status" validate:"required"`
}

type TaskResponse struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	TeamID           int64      `json:"teamId"`
	CreatorID        int64      `json:"creatorId"`
	Priority         string     `json:"priority"`
	Status           string     `json:"status"`
	DueDate          *time.Time `json:"dueDate"`
	OriginTemplateID *int64     `json:"originTemplateId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"omitempty,oneof=member admin"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type TeamMemberResponse struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

type TeamResponse struct {
	ID      int64                `json:"id"`
	Name    string               `json:"name"`
	Members []TeamMemberResponse `json:"members"`
}

type CreateTagRequest struct {
	Label string `json:"label" validate:"required"`
}
