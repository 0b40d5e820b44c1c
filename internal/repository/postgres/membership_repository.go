package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

func (r *membershipRepository) Get(ctx context.Context, teamID, userID int64) (*domain.Membership, error) {
	query := `
		SELECT id, team_id, user_id, role, created_at
		FROM memberships
		WHERE team_id = $1 AND user_id = $2
	`

	membership, err := scanMembership(r.executor.QueryRowContext(ctx, query, teamID, userID))
	if err != nil {
		return nil, mapError(err)
	}
	return membership, nil
}

func (r *membershipRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Membership, error) {
	query := `
		SELECT id, team_id, user_id, role, created_at
		FROM memberships
		WHERE user_id = $1
		ORDER BY team_id
	`
	return r.list(ctx, query, userID)
}

func (r *membershipRepository) ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Membership, error) {
	query := `
		SELECT id, team_id, user_id, role, created_at
		FROM memberships
		WHERE team_id = $1
		ORDER BY created_at, id
	`
	return r.list(ctx, query, teamID)
}

func (r *membershipRepository) list(ctx context.Context, query string, arg int64) ([]*domain.Membership, error) {
	rows, err := r.executor.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		membership, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, membership)
	}

	return memberships, rows.Err()
}

func scanMembership(row rowScanner) (*domain.Membership, error) {
	membership := &domain.Membership{}
	var role string
	err := row.Scan(
		&membership.ID,
		&membership.TeamID,
		&membership.UserID,
		&role,
		&membership.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	membership.Role = domain.MembershipRole(role)
	return membership, nil
}
