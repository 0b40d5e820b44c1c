package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

type TeamService interface {
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
}
