package service

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type teamService struct {
	teamRepo          repository.TeamRepository
	membershipService MembershipService
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, membershipService MembershipService) TeamService {
	return &teamService{
		teamRepo:          teamRepo,
		membershipService: membershipService,
	}
}

// GetTeam получает команду с участниками по идентификатору
func (s *teamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrTeamNotFound)
	}

	memberships, err := s.membershipService.ListMembershipsForTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Members = make([]domain.Membership, 0, len(memberships))
	for _, membership := range memberships {
		team.Members = append(team.Members, *membership)
	}

	return team, nil
}
