package repository

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TeamRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
}

// MembershipRepository читает членства, которыми управляет внешний сервис команд
type MembershipRepository interface {
	Get(ctx context.Context, teamID, userID int64) (*domain.Membership, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Membership, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Membership, error)
}
