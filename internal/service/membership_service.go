package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
)

// MembershipService - единственная точка проверки прав: кто и с какой ролью состоит в команде
type MembershipService interface {
	// ResolveMembership возвращает nil, nil если пользователь не состоит в команде
	ResolveMembership(ctx context.Context, teamID, userID int64) (*domain.Membership, error)
	ListMembershipsForUser(ctx context.Context, userID int64) ([]*domain.Membership, error)
	ListMembershipsForTeam(ctx context.Context, teamID int64) ([]*domain.Membership, error)
}
