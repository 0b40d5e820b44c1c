package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type taskTemplateRepository struct {
	db *sql.DB
}

func NewTaskTemplateRepository(db *sql.DB) *taskTemplateRepository {
	return &taskTemplateRepository{db: db}
}

const templateColumns = `t.id, t.name, t.description, t.priority, t.team_id, t.creator_id, t.created_at, t.updated_at`

func (r *taskTemplateRepository) Create(ctx context.Context, template *domain.TaskTemplate) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO task_templates (name, description, priority, team_id, creator_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING id, created_at, updated_at
		`

		err := tx.QueryRowContext(
			ctx,
			query,
			template.Name,
			template.Description,
			string(template.Priority),
			template.TeamID,
			template.CreatorID,
			time.Now(),
		).Scan(&template.ID, &template.CreatedAt, &template.UpdatedAt)
		if err != nil {
			return mapError(err)
		}

		return insertTemplateTags(ctx, tx, template.ID, template.Tags)
	})
}

func (r *taskTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.TaskTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM task_templates t
		WHERE t.id = $1
	`

	template, err := scanTemplate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}

	if err := r.loadTags(ctx, []*domain.TaskTemplate{template}); err != nil {
		return nil, err
	}
	return template, nil
}

// List возвращает страницу шаблонов создателя и общее число подходящих шаблонов
func (r *taskTemplateRepository) List(ctx context.Context, filter domain.TemplateFilter) ([]*domain.TaskTemplate, int, error) {
	args := []any{filter.CreatorID}
	conditions := []string{"t.creator_id = $1"}

	if filter.TeamID != nil {
		args = append(args, *filter.TeamID)
		conditions = append(conditions, fmt.Sprintf("t.team_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(`(t.name LIKE $%d ESCAPE '\' OR t.description LIKE $%d ESCAPE '\')`, n, n))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM task_templates t WHERE ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := slices.Concat(args, []any{filter.Limit, filter.Offset()})
	query := fmt.Sprintf(`
		SELECT %s
		FROM task_templates t
		WHERE %s
		ORDER BY t.updated_at DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, templateColumns, where, len(pageArgs)-1, len(pageArgs))

	rows, err := r.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	templates := make([]*domain.TaskTemplate, 0, max(0, min(filter.Limit, total)))
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		templates = append(templates, template)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.loadTags(ctx, templates); err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

func (r *taskTemplateRepository) Update(ctx context.Context, template *domain.TaskTemplate, replaceTags bool) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			UPDATE task_templates
			SET name = $2, description = $3, priority = $4, team_id = $5, updated_at = $6
			WHERE id = $1
			RETURNING updated_at
		`

		err := tx.QueryRowContext(
			ctx,
			query,
			template.ID,
			template.Name,
			template.Description,
			string(template.Priority),
			template.TeamID,
			time.Now(),
		).Scan(&template.UpdatedAt)
		if err != nil {
			return mapError(err)
		}

		if !replaceTags {
			return nil
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM template_tags WHERE template_id = $1", template.ID); err != nil {
			return err
		}
		return insertTemplateTags(ctx, tx, template.ID, template.Tags)
	})
}

func (r *taskTemplateRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM task_templates WHERE id = $1", id)
	if err != nil {
		return err
	}
	return checkRowsAffected(result)
}

func (r *taskTemplateRepository) ExistsByNameAndCreator(ctx context.Context, name string, creatorID int64, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM task_templates
			WHERE name = $1 AND creator_id = $2 AND id <> $3
		)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, creatorID, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *taskTemplateRepository) loadTags(ctx context.Context, templates []*domain.TaskTemplate) error {
	if len(templates) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.TaskTemplate, len(templates))
	ids := make([]int64, 0, len(templates))
	for _, template := range templates {
		template.Tags = []domain.Tag{}
		byID[template.ID] = template
		ids = append(ids, template.ID)
	}

	placeholders, args := inClause(nil, ids)
	query := `
		SELECT tt.template_id, tg.id, tg.label, tg.created_at
		FROM template_tags tt
		JOIN tags tg ON tg.id = tt.tag_id
		WHERE tt.template_id IN (` + placeholders + `)
		ORDER BY tg.id
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var templateID int64
		var tag domain.Tag
		if err := rows.Scan(&templateID, &tag.ID, &tag.Label, &tag.CreatedAt); err != nil {
			return err
		}
		if template, ok := byID[templateID]; ok {
			template.Tags = append(template.Tags, tag)
		}
	}

	return rows.Err()
}

func insertTemplateTags(ctx context.Context, tx *sql.Tx, templateID int64, tags []domain.Tag) error {
	for _, tag := range tags {
		_, err := tx.ExecContext(
			ctx,
			"INSERT INTO template_tags (template_id, tag_id) VALUES ($1, $2)",
			templateID,
			tag.ID,
		)
		if err != nil {
			return mapError(err)
		}
	}
	return nil
}

func scanTemplate(row rowScanner) (*domain.TaskTemplate, error) {
	template := &domain.TaskTemplate{}
	var description sql.NullString
	var priority string
	var teamID sql.NullInt64
	err := row.Scan(
		&template.ID,
		&template.Name,
		&description,
		&priority,
		&teamID,
		&template.CreatorID,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	template.Description = nullStringToPtr(description)
	template.Priority = domain.TemplatePriority(priority)
	template.TeamID = nullInt64ToPtr(teamID)
	return template, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы LIKE, поиск остается подстрочным
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
