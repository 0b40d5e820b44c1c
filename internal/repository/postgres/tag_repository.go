package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type tagRepository struct {
	executor DBExecutor
}

func NewTagRepository(db *sql.DB) *tagRepository {
	return &tagRepository{executor: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	query := `
		INSERT INTO tags (label, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(ctx, query, tag.Label, time.Now()).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	query := `
		SELECT id, label, created_at
		FROM tags
		ORDER BY label
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		tag := &domain.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Label, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// GetByIDs возвращает найденные теги; отсутствующие id просто пропускаются
func (r *tagRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return []domain.Tag{}, nil
	}

	placeholders, args := inClause(nil, ids)
	query := `
		SELECT id, label, created_at
		FROM tags
		WHERE id IN (` + placeholders + `)
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0, len(ids))
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Label, &tag.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, rows.Err()
}
