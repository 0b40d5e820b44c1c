package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

type taskService struct {
	taskRepo          repository.TaskRepository
	templateRepo      repository.TaskTemplateRepository
	teamRepo          repository.TeamRepository
	userRepo          repository.UserRepository
	membershipService MembershipService
	log               *slog.Logger
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	templateRepo repository.TaskTemplateRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	membershipService MembershipService,
	log *slog.Logger,
) TaskService {
	return &taskService{
		taskRepo:          taskRepo,
		templateRepo:      templateRepo,
		teamRepo:          teamRepo,
		userRepo:          userRepo,
		membershipService: membershipService,
		log:               log,
	}
}

// CreateTask создает задачу в команде; создавать задачи может только OWNER команды
func (s *taskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.NewValidationError("priority", "must be one of alta, media, baja")
	}

	if _, err := getUser(ctx, s.userRepo, input.UserID); err != nil {
		return nil, err
	}

	if err := s.checkTeamOwner(ctx, input.TeamID, input.UserID); err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return nil, notFound(err, domain.ErrTeamNotFound)
	}

	if input.OriginTemplateID != nil {
		template, err := s.templateRepo.GetByID(ctx, *input.OriginTemplateID)
		if err != nil {
			return nil, notFound(err, domain.ErrTemplateNotFound)
		}
		if template.CreatorID != input.UserID {
			return nil, domain.ErrNotTemplateOwner
		}
	}

	task := &domain.Task{
		Title:            title,
		Description:      input.Description,
		TeamID:           input.TeamID,
		CreatorID:        input.UserID,
		Priority:         priority,
		Status:           domain.TaskStatusPending,
		DueDate:          input.DueDate,
		OriginTemplateID: input.OriginTemplateID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, notFound(err, domain.NewNotFoundError("team or template does not exist"))
	}

	s.log.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"team_id", task.TeamID,
		"origin_template_id", task.OriginTemplateID,
	)
	return task, nil
}

// GetAllTasks: администратор видит все задачи, остальные - задачи своих команд
func (s *taskService) GetAllTasks(ctx context.Context, userID int64) ([]*domain.Task, error) {
	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return s.taskRepo.List(ctx)
	}

	teamIDs, err := s.userTeamIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.ListByTeamIDs(ctx, teamIDs)
}

func (s *taskService) GetTasksByStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "must be one of PENDIENTE, EN_CURSO, FINALIZADA, CANCELADA")
	}

	user, err := getUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return s.taskRepo.ListByStatus(ctx, status)
	}

	teamIDs, err := s.userTeamIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.ListByTeamIDsAndStatus(ctx, teamIDs, status)
}

func (s *taskService) UpdateTask(ctx context.Context, id, actorUserID int64, input UpdateTaskInput) (*domain.Task, error) {
	task, err := s.getManagedTask(ctx, id, actorUserID)
	if err != nil {
		return nil, err
	}
	if task.Status.IsTerminal() {
		return nil, domain.ErrTaskClosed
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.NewValidationError("title", "must not be empty")
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, domain.NewValidationError("priority", "must be one of alta, media, baja")
		}
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}

	s.log.InfoContext(ctx, "task updated", "task_id", task.ID, "actor_id", actorUserID)
	return task, nil
}

// ChangeTaskStatus переводит задачу в новый статус; закрытые задачи не меняются
func (s *taskService) ChangeTaskStatus(ctx context.Context, id, actorUserID int64, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "must be one of PENDIENTE, EN_CURSO, FINALIZADA, CANCELADA")
	}

	task, err := s.getManagedTask(ctx, id, actorUserID)
	if err != nil {
		return nil, err
	}
	if task.Status.IsTerminal() {
		return nil, domain.ErrTaskClosed
	}

	if err := s.taskRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}

	s.log.InfoContext(ctx, "task status changed",
		"task_id", id,
		"from", task.Status,
		"to", status,
	)

	updated, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}
	return updated, nil
}

// DeleteTask удаляет задачу в любом статусе
func (s *taskService) DeleteTask(ctx context.Context, id, actorUserID int64) error {
	if _, err := s.getManagedTask(ctx, id, actorUserID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return notFound(err, domain.ErrTaskNotFound)
	}

	s.log.InfoContext(ctx, "task deleted", "task_id", id, "actor_id", actorUserID)
	return nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

// getManagedTask загружает задачу и проверяет, что actor - OWNER ее команды
func (s *taskService) getManagedTask(ctx context.Context, id, actorUserID int64) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}

	if _, err := getUser(ctx, s.userRepo, actorUserID); err != nil {
		return nil, err
	}

	if err := s.checkTeamOwner(ctx, task.TeamID, actorUserID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) checkTeamOwner(ctx context.Context, teamID, userID int64) error {
	membership, err := s.membershipService.ResolveMembership(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !membership.IsOwner() {
		return domain.ErrNotTeamOwner
	}
	return nil
}

func (s *taskService) userTeamIDs(ctx context.Context, userID int64) ([]int64, error) {
	memberships, err := s.membershipService.ListMembershipsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, domain.ErrNoTeams
	}

	teamIDs := make([]int64, 0, len(memberships))
	for _, membership := range memberships {
		teamIDs = append(teamIDs, membership.TeamID)
	}
	return teamIDs, nil
}
