package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

const taskColumns = `id, title, description, team_id, creator_id, priority, status, due_date, origin_template_id, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (title, description, team_id, creator_id, priority, status, due_date, origin_template_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.TeamID,
		task.CreatorID,
		string(task.Priority),
		string(task.Status),
		task.DueDate,
		task.OriginTemplateID,
		time.Now(),
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	task.UpdatedAt = nil
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, query)
}

func (r *taskRepository) ListByTeamIDs(ctx context.Context, teamIDs []int64) ([]*domain.Task, error) {
	if len(teamIDs) == 0 {
		return []*domain.Task{}, nil
	}

	placeholders, args := inClause(nil, teamIDs)
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE team_id IN (` + placeholders + `)
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, query, args...)
}

func (r *taskRepository) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE status = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, query, string(status))
}

func (r *taskRepository) ListByTeamIDsAndStatus(ctx context.Context, teamIDs []int64, status domain.TaskStatus) ([]*domain.Task, error) {
	if len(teamIDs) == 0 {
		return []*domain.Task{}, nil
	}

	placeholders, args := inClause([]any{string(status)}, teamIDs)
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE status = $1 AND team_id IN (` + placeholders + `)
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, query, args...)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, priority = $4, updated_at = $5
		WHERE id = $1
		RETURNING updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		string(task.Priority),
		time.Now(),
	).Scan(&updatedAt)
	if err != nil {
		return mapError(err)
	}

	task.UpdatedAt = nullTimeToPtr(updatedAt)
	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	query := `
		UPDATE tasks
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id, string(status), time.Now())
	if err != nil {
		return err
	}
	return checkRowsAffected(result)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	return checkRowsAffected(result)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var priority, status string
	var dueDate, updatedAt sql.NullTime
	var originTemplateID sql.NullInt64
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.TeamID,
		&task.CreatorID,
		&priority,
		&status,
		&dueDate,
		&originTemplateID,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	task.DueDate = nullTimeToPtr(dueDate)
	task.OriginTemplateID = nullInt64ToPtr(originTemplateID)
	task.UpdatedAt = nullTimeToPtr(updatedAt)
	return task, nil
}
