package repository

import "errors"

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate - нарушено ограничение уникальности
	ErrDuplicate = errors.New("repository: duplicate")
)
