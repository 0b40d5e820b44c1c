package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	// maxPage держит (page-1)*limit в пределах int
	maxPage = math.MaxInt / maxLimit
)

type taskTemplateService struct {
	templateRepo      repository.TaskTemplateRepository
	tagRepo           repository.TagRepository
	userRepo          repository.UserRepository
	membershipService MembershipService
	log               *slog.Logger
}

// NewTaskTemplateService создает новый экземпляр TaskTemplateService
func NewTaskTemplateService(
	templateRepo repository.TaskTemplateRepository,
	tagRepo repository.TagRepository,
	userRepo repository.UserRepository,
	membershipService MembershipService,
	log *slog.Logger,
) TaskTemplateService {
	return &taskTemplateService{
		templateRepo:      templateRepo,
		tagRepo:           tagRepo,
		userRepo:          userRepo,
		membershipService: membershipService,
		log:               log,
	}
}

// CreateTemplate проверяет входные данные, права создателя в команде и теги, затем сохраняет шаблон
func (s *taskTemplateService) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.TaskTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TemplatePriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.NewValidationError("defaultPriority", "must be one of HIGH, MEDIUM, LOW")
	}

	if _, err := getUser(ctx, s.userRepo, input.CreatorID); err != nil {
		return nil, err
	}

	exists, err := s.templateRepo.ExistsByNameAndCreator(ctx, name, input.CreatorID, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateTemplateName
	}

	if input.TeamID != nil {
		if err := s.checkTeamMember(ctx, *input.TeamID, input.CreatorID); err != nil {
			return nil, err
		}
	}

	tags, err := s.resolveTags(ctx, input.TagIDs)
	if err != nil {
		return nil, err
	}

	template := &domain.TaskTemplate{
		Name:        name,
		Description: input.Description,
		Priority:    priority,
		TeamID:      input.TeamID,
		CreatorID:   input.CreatorID,
		Tags:        tags,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, s.translateWriteError(err)
	}

	s.log.InfoContext(ctx, "task template created",
		"template_id", template.ID,
		"creator_id", template.CreatorID,
		"tags", len(template.Tags),
	)
	return template, nil
}

// ListTemplates возвращает страницу шаблонов пользователя и их общее число без учета пагинации
func (s *taskTemplateService) ListTemplates(
	ctx context.Context,
	userID int64,
	teamID *int64,
	search string,
	page, limit int,
) ([]*domain.TaskTemplate, int, error) {
	if _, err := getUser(ctx, s.userRepo, userID); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = defaultPage
	}
	if page > maxPage {
		return nil, 0, domain.NewValidationError("page", "is too large")
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return s.templateRepo.List(ctx, domain.TemplateFilter{
		CreatorID: userID,
		TeamID:    teamID,
		Search:    search,
		Page:      page,
		Limit:     limit,
	})
}

func (s *taskTemplateService) GetTemplateByID(ctx context.Context, id, userID int64) (*domain.TaskTemplate, error) {
	return s.getOwnedTemplate(ctx, id, userID)
}

func (s *taskTemplateService) UpdateTemplate(
	ctx context.Context,
	id, userID int64,
	input UpdateTemplateInput,
) (*domain.TaskTemplate, error) {
	template, err := s.getOwnedTemplate(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
		if name != template.Name {
			exists, err := s.templateRepo.ExistsByNameAndCreator(ctx, name, template.CreatorID, template.ID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateTemplateName
			}
			template.Name = name
		}
	}

	if input.Description != nil {
		template.Description = input.Description
	}

	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, domain.NewValidationError("priority", "must be one of HIGH, MEDIUM, LOW")
		}
		template.Priority = *input.Priority
	}

	if input.TeamID != nil {
		if err := s.checkTeamMember(ctx, *input.TeamID, userID); err != nil {
			return nil, err
		}
		template.TeamID = input.TeamID
	}

	replaceTags := input.TagIDs != nil
	if replaceTags {
		tags, err := s.resolveTags(ctx, input.TagIDs)
		if err != nil {
			return nil, err
		}
		template.Tags = tags
	}

	if err := s.templateRepo.Update(ctx, template, replaceTags); err != nil {
		return nil, s.translateWriteError(err)
	}

	s.log.InfoContext(ctx, "task template updated", "template_id", template.ID, "tags_replaced", replaceTags)
	return template, nil
}

// DeleteTemplate удаляет шаблон; задачи, созданные из него, остаются без ссылки на источник
func (s *taskTemplateService) DeleteTemplate(ctx context.Context, id, userID int64) error {
	if _, err := s.getOwnedTemplate(ctx, id, userID); err != nil {
		return err
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return notFound(err, domain.ErrTemplateNotFound)
	}

	s.log.InfoContext(ctx, "task template deleted", "template_id", id)
	return nil
}

// GetTemplatePreview собирает данные для предзаполнения новой задачи из шаблона
func (s *taskTemplateService) GetTemplatePreview(ctx context.Context, id, userID int64) (*domain.TemplatePreview, error) {
	template, err := s.getOwnedTemplate(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	tagIDs := template.TagIDs()
	slices.Sort(tagIDs)

	return &domain.TemplatePreview{
		Name:             template.Name,
		Description:      template.Description,
		Priority:         template.Priority,
		TeamID:           template.TeamID,
		TagIDs:           tagIDs,
		Tags:             template.Tags,
		OriginTemplateID: template.ID,
	}, nil
}

func (s *taskTemplateService) getOwnedTemplate(ctx context.Context, id, userID int64) (*domain.TaskTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, domain.ErrTemplateNotFound)
	}
	if template.CreatorID != userID {
		return nil, domain.ErrNotTemplateOwner
	}
	return template, nil
}

// checkTeamMember пропускает любого участника команды, роль не важна
func (s *taskTemplateService) checkTeamMember(ctx context.Context, teamID, userID int64) error {
	membership, err := s.membershipService.ResolveMembership(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return domain.ErrNotTeamMember
	}
	return nil
}

// resolveTags схлопывает повторы и требует, чтобы нашлись все теги
func (s *taskTemplateService) resolveTags(ctx context.Context, tagIDs []int64) ([]domain.Tag, error) {
	unique := uniqueIDs(tagIDs)
	if len(unique) == 0 {
		return []domain.Tag{}, nil
	}

	tags, err := s.tagRepo.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		return nil, domain.ErrUnknownTag
	}
	return tags, nil
}

func (s *taskTemplateService) translateWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return domain.ErrDuplicateTemplateName
	case errors.Is(err, repository.ErrNotFound):
		// строка или внешний ключ исчезли между проверкой и записью
		return domain.NewNotFoundError("template, team or tag does not exist")
	}
	return err
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
