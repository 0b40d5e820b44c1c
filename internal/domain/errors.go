package domain

import "fmt"

const (
	CodeNotFound   = "NOT_FOUND"
	CodeForbidden  = "FORBIDDEN"
	CodeConflict   = "CONFLICT"
	CodeValidation = "VALIDATION"
	CodeBadRequest = "BAD_REQUEST"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is() по коду ошибки
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrForbidden - нет прав на операцию
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "operation not permitted",
	}

	// ErrConflict - нарушение уникальности или состояния
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "conflict",
	}

	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "invalid input",
	}

	ErrUserNotFound     = NewNotFoundError("user does not exist")
	ErrTeamNotFound     = NewNotFoundError("team does not exist")
	ErrTemplateNotFound = NewNotFoundError("template not found")
	ErrTaskNotFound     = NewNotFoundError("task does not exist")
	ErrUnknownTag       = NewNotFoundError("unknown tag")

	ErrDuplicateTemplateName = NewConflictError("duplicate template name")
	ErrDuplicateTag          = NewConflictError("tag label already exists")
	ErrTaskClosed            = NewConflictError("task is finished or cancelled")

	ErrNotTeamMember    = NewForbiddenError("not a team member")
	ErrNotTeamOwner     = NewForbiddenError("only team owners can manage tasks")
	ErrNotTemplateOwner = NewForbiddenError("template belongs to another user")
	ErrNoTeams          = NewForbiddenError("user does not belong to any team")
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: message}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{Code: CodeForbidden, Message: message}
}

func NewConflictError(message string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: message}
}

// NewValidationError создает ошибку VALIDATION для поля field
func NewValidationError(field, reason string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf("%s %s", field, reason),
	}
}
