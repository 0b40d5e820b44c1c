package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
}

func NewMembershipService(membershipRepo repository.MembershipRepository) MembershipService {
	return &membershipService{membershipRepo: membershipRepo}
}

func (s *membershipService) ResolveMembership(ctx context.Context, teamID, userID int64) (*domain.Membership, error) {
	membership, err := s.membershipRepo.Get(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return membership, nil
}

func (s *membershipService) ListMembershipsForUser(ctx context.Context, userID int64) ([]*domain.Membership, error) {
	return s.membershipRepo.ListByUserID(ctx, userID)
}

func (s *membershipService) ListMembershipsForTeam(ctx context.Context, teamID int64) ([]*domain.Membership, error) {
	return s.membershipRepo.ListByTeamID(ctx, teamID)
}
