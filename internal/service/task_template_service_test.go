package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/logger"
	"github.com/bagdasarian/taskboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type templateMocks struct {
	templateRepo   *MockTaskTemplateRepository
	tagRepo        *MockTagRepository
	userRepo       *MockUserRepository
	membershipRepo *MockMembershipRepository
}

func newTemplateService() (TaskTemplateService, *templateMocks) {
	m := &templateMocks{
		templateRepo:   new(MockTaskTemplateRepository),
		tagRepo:        new(MockTagRepository),
		userRepo:       new(MockUserRepository),
		membershipRepo: new(MockMembershipRepository),
	}
	service := NewTaskTemplateService(
		m.templateRepo,
		m.tagRepo,
		m.userRepo,
		NewMembershipService(m.membershipRepo),
		logger.Discard(),
	)
	return service, m
}

func (m *templateMocks) assertExpectations(t *testing.T) {
	m.templateRepo.AssertExpectations(t)
	m.tagRepo.AssertExpectations(t)
	m.userRepo.AssertExpectations(t)
	m.membershipRepo.AssertExpectations(t)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestTaskTemplateService_CreateTemplate(t *testing.T) {
	ctx := context.Background()
	creator := &domain.User{ID: 1, Name: "Alice", Role: domain.UserRoleMember}

	t.Run("успешное создание шаблона с командой и тегами", func(t *testing.T) {
		service, m := newTemplateService()

		tags := []domain.Tag{{ID: 3, Label: "api"}, {ID: 5, Label: "db"}}
		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(creator, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Deploy", int64(1), int64(0)).Return(false, nil).Once()
		m.membershipRepo.On("Get", mock.Anything, int64(7), int64(1)).
			Return(&domain.Membership{TeamID: 7, UserID: 1, Role: domain.MembershipRoleMember}, nil).Once()
		m.tagRepo.On("GetByIDs", mock.Anything, []int64{5, 3}).Return(tags, nil).Once()
		m.templateRepo.On("Create", mock.Anything, mock.MatchedBy(func(tpl *domain.TaskTemplate) bool {
			return tpl.Name == "Deploy" &&
				tpl.Priority == domain.TemplatePriorityHigh &&
				*tpl.TeamID == 7 &&
				tpl.CreatorID == 1 &&
				len(tpl.Tags) == 2
		})).Run(func(args mock.Arguments) {
			tpl := args.Get(1).(*domain.TaskTemplate)
			tpl.ID = 11
			tpl.CreatedAt = time.Now()
			tpl.UpdatedAt = tpl.CreatedAt
		}).Return(nil).Once()

		result, err := service.CreateTemplate(ctx, CreateTemplateInput{
			Name:      "  Deploy  ",
			Priority:  domain.TemplatePriorityHigh,
			CreatorID: 1,
			TeamID:    int64Ptr(7),
			TagIDs:    []int64{5, 3, 5},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(11), result.ID)
		assert.Equal(t, "Deploy", result.Name)
		m.assertExpectations(t)
	})

	t.Run("приоритет по умолчанию MEDIUM, без тегов", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(creator, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Weekly", int64(1), int64(0)).Return(false, nil).Once()
		m.templateRepo.On("Create", mock.Anything, mock.MatchedBy(func(tpl *domain.TaskTemplate) bool {
			return tpl.Priority == domain.TemplatePriorityMedium && tpl.TeamID == nil && len(tpl.Tags) == 0
		})).Return(nil).Once()

		result, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "Weekly", CreatorID: 1})

		require.NoError(t, err)
		assert.Equal(t, domain.TemplatePriorityMedium, result.Priority)
		m.tagRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		service, m := newTemplateService()

		result, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "   ", CreatorID: 1})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrValidation))
		m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: неизвестный приоритет", func(t *testing.T) {
		service, _ := newTemplateService()

		_, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "X", Priority: "URGENT", CreatorID: 1})

		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("ошибка: создатель не существует", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, repository.ErrNotFound).Once()

		_, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "X", CreatorID: 99})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "user does not exist", err.Error())
	})

	t.Run("ошибка: у создателя уже есть шаблон с таким именем", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(creator, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Deploy", int64(1), int64(0)).Return(true, nil).Once()

		_, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "Deploy", CreatorID: 1})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Equal(t, "duplicate template name", err.Error())
		m.templateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("то же имя у другого создателя допустимо", func(t *testing.T) {
		service, m := newTemplateService()

		other := &domain.User{ID: 2, Name: "Bob", Role: domain.UserRoleMember}
		m.userRepo.On("GetByID", mock.Anything, int64(2)).Return(other, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Deploy", int64(2), int64(0)).Return(false, nil).Once()
		m.templateRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "Deploy", CreatorID: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.CreatorID)
		m.assertExpectations(t)
	})

	t.Run("ошибка: создатель не состоит в команде", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(creator, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Deploy", int64(1), int64(0)).Return(false, nil).Once()
		m.membershipRepo.On("Get", mock.Anything, int64(7), int64(1)).Return(nil, repository.ErrNotFound).Once()

		_, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "Deploy", CreatorID: 1, TeamID: int64Ptr(7)})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		assert.Equal(t, "not a team member", err.Error())
	})

	t.Run("ошибка: часть тегов не найдена", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(creator, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Deploy", int64(1), int64(0)).Return(false, nil).Once()
		m.tagRepo.On("GetByIDs", mock.Anything, []int64{1, 2}).Return([]domain.Tag{{ID: 1, Label: "api"}}, nil).Once()

		_, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "Deploy", CreatorID: 1, TagIDs: []int64{1, 2}})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "unknown tag", err.Error())
		m.templateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: гонка за имя закрывается ограничением уникальности", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(creator, nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Deploy", int64(1), int64(0)).Return(false, nil).Once()
		m.templateRepo.On("Create", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: task_templates_creator_name_key", repository.ErrDuplicate)).Once()

		_, err := service.CreateTemplate(ctx, CreateTemplateInput{Name: "Deploy", CreatorID: 1})

		assert.True(t, errors.Is(err, domain.ErrDuplicateTemplateName))
	})
}

func TestTaskTemplateService_ListTemplates(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: 1, Name: "Alice", Role: domain.UserRoleMember}

	t.Run("вторая страница: offset 10, total без учета пагинации", func(t *testing.T) {
		service, m := newTemplateService()

		page := []*domain.TaskTemplate{{ID: 11, Name: "t11", CreatorID: 1}}
		expectedFilter := domain.TemplateFilter{CreatorID: 1, Search: "deploy", Page: 2, Limit: 10}
		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(user, nil).Once()
		m.templateRepo.On("List", mock.Anything, expectedFilter).Return(page, 25, nil).Once()

		result, total, err := service.ListTemplates(ctx, 1, nil, "deploy", 2, 10)

		require.NoError(t, err)
		assert.Equal(t, 25, total)
		assert.Len(t, result, 1)
		assert.Equal(t, 10, expectedFilter.Offset())
		m.assertExpectations(t)
	})

	t.Run("нормализация страницы и лимита", func(t *testing.T) {
		service, m := newTemplateService()

		teamID := int64Ptr(4)
		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(user, nil).Once()
		m.templateRepo.On("List", mock.Anything, domain.TemplateFilter{
			CreatorID: 1,
			TeamID:    teamID,
			Page:      1,
			Limit:     10,
		}).Return([]*domain.TaskTemplate{}, 0, nil).Once()

		result, total, err := service.ListTemplates(ctx, 1, teamID, "", 0, -5)

		require.NoError(t, err)
		assert.Empty(t, result)
		assert.Equal(t, 0, total)
		m.assertExpectations(t)
	})

	t.Run("лимит больше максимума урезается", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(user, nil).Once()
		m.templateRepo.On("List", mock.Anything, domain.TemplateFilter{
			CreatorID: 1,
			Page:      1,
			Limit:     maxLimit,
		}).Return([]*domain.TaskTemplate{}, 0, nil).Once()

		_, _, err := service.ListTemplates(ctx, 1, nil, "", 1, 1<<40)

		require.NoError(t, err)
		m.assertExpectations(t)
	})

	t.Run("ошибка: слишком большой номер страницы", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(user, nil).Once()

		_, _, err := service.ListTemplates(ctx, 1, nil, "", math.MaxInt/2, 10)

		assert.True(t, errors.Is(err, domain.ErrValidation))
		m.templateRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("последняя допустимая страница не переполняет смещение", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(user, nil).Once()
		m.templateRepo.On("List", mock.Anything, mock.MatchedBy(func(f domain.TemplateFilter) bool {
			return f.Page == maxPage && f.Limit == maxLimit && f.Offset() > 0
		})).Return([]*domain.TaskTemplate{}, 3, nil).Once()

		_, total, err := service.ListTemplates(ctx, 1, nil, "", maxPage, 500)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		m.assertExpectations(t)
	})

	t.Run("ошибка: пользователь не существует", func(t *testing.T) {
		service, m := newTemplateService()

		m.userRepo.On("GetByID", mock.Anything, int64(1)).Return(nil, repository.ErrNotFound).Once()

		_, _, err := service.ListTemplates(ctx, 1, nil, "", 1, 10)

		assert.True(t, errors.Is(err, domain.ErrUserNotFound))
		m.templateRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestTaskTemplateService_OwnershipChecks(t *testing.T) {
	ctx := context.Background()
	template := func() *domain.TaskTemplate {
		return &domain.TaskTemplate{ID: 5, Name: "Deploy", CreatorID: 1, Priority: domain.TemplatePriorityLow}
	}

	t.Run("чтение чужого шаблона запрещено", func(t *testing.T) {
		service, m := newTemplateService()
		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()

		result, err := service.GetTemplateByID(ctx, 5, 2)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("обновление чужого шаблона запрещено", func(t *testing.T) {
		service, m := newTemplateService()
		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()

		_, err := service.UpdateTemplate(ctx, 5, 2, UpdateTemplateInput{Name: strPtr("Other")})

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		m.templateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("удаление чужого шаблона запрещено", func(t *testing.T) {
		service, m := newTemplateService()
		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()

		err := service.DeleteTemplate(ctx, 5, 2)

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		m.templateRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("предпросмотр чужого шаблона запрещен", func(t *testing.T) {
		service, m := newTemplateService()
		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()

		result, err := service.GetTemplatePreview(ctx, 5, 2)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("ошибка: шаблон не найден", func(t *testing.T) {
		service, m := newTemplateService()
		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, repository.ErrNotFound).Once()

		_, err := service.GetTemplateByID(ctx, 5, 1)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "template not found", err.Error())
	})

	t.Run("создатель читает свой шаблон", func(t *testing.T) {
		service, m := newTemplateService()
		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()

		result, err := service.GetTemplateByID(ctx, 5, 1)

		require.NoError(t, err)
		assert.Equal(t, "Deploy", result.Name)
	})
}

func TestTaskTemplateService_UpdateTemplate(t *testing.T) {
	ctx := context.Background()
	template := func() *domain.TaskTemplate {
		return &domain.TaskTemplate{
			ID:        5,
			Name:      "Deploy",
			CreatorID: 1,
			Priority:  domain.TemplatePriorityLow,
			TeamID:    int64Ptr(3),
			Tags:      []domain.Tag{{ID: 1, Label: "api"}},
		}
	}

	t.Run("частичное обновление без замены тегов", func(t *testing.T) {
		service, m := newTemplateService()
		high := domain.TemplatePriorityHigh

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Release", int64(1), int64(5)).Return(false, nil).Once()
		m.templateRepo.On("Update", mock.Anything, mock.MatchedBy(func(tpl *domain.TaskTemplate) bool {
			return tpl.Name == "Release" && tpl.Priority == domain.TemplatePriorityHigh && *tpl.TeamID == 3
		}), false).Return(nil).Once()

		result, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{
			Name:     strPtr(" Release "),
			Priority: &high,
		})

		require.NoError(t, err)
		assert.Equal(t, "Release", result.Name)
		assert.Len(t, result.Tags, 1)
		m.assertExpectations(t)
	})

	t.Run("то же имя не проверяется на уникальность повторно", func(t *testing.T) {
		service, m := newTemplateService()

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()
		m.templateRepo.On("Update", mock.Anything, mock.Anything, false).Return(nil).Once()

		_, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{Name: strPtr("Deploy")})

		require.NoError(t, err)
		m.templateRepo.AssertNotCalled(t, "ExistsByNameAndCreator", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("пустой список тегов очищает набор", func(t *testing.T) {
		service, m := newTemplateService()

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()
		m.templateRepo.On("Update", mock.Anything, mock.MatchedBy(func(tpl *domain.TaskTemplate) bool {
			return len(tpl.Tags) == 0
		}), true).Return(nil).Once()

		result, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{TagIDs: []int64{}})

		require.NoError(t, err)
		assert.Empty(t, result.Tags)
		m.tagRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
		m.assertExpectations(t)
	})

	t.Run("смена команды требует членства", func(t *testing.T) {
		service, m := newTemplateService()

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()
		m.membershipRepo.On("Get", mock.Anything, int64(9), int64(1)).Return(nil, repository.ErrNotFound).Once()

		_, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{TeamID: int64Ptr(9)})

		assert.True(t, errors.Is(err, domain.ErrNotTeamMember))
	})

	t.Run("ошибка: новое имя занято", func(t *testing.T) {
		service, m := newTemplateService()

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()
		m.templateRepo.On("ExistsByNameAndCreator", mock.Anything, "Taken", int64(1), int64(5)).Return(true, nil).Once()

		_, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{Name: strPtr("Taken")})

		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("ошибка: пустое новое имя", func(t *testing.T) {
		service, m := newTemplateService()

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()

		_, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{Name: strPtr("  ")})

		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("ошибка: неизвестный тег при замене", func(t *testing.T) {
		service, m := newTemplateService()

		m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template(), nil).Once()
		m.tagRepo.On("GetByIDs", mock.Anything, []int64{8}).Return([]domain.Tag{}, nil).Once()

		_, err := service.UpdateTemplate(ctx, 5, 1, UpdateTemplateInput{TagIDs: []int64{8}})

		assert.True(t, errors.Is(err, domain.ErrUnknownTag))
	})
}

func TestTaskTemplateService_DeleteTemplate(t *testing.T) {
	service, m := newTemplateService()

	m.templateRepo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.TaskTemplate{ID: 5, CreatorID: 1}, nil).Once()
	m.templateRepo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

	err := service.DeleteTemplate(context.Background(), 5, 1)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestTaskTemplateService_GetTemplatePreview(t *testing.T) {
	service, m := newTemplateService()

	template := &domain.TaskTemplate{
		ID:          5,
		Name:        "Deploy",
		Description: strPtr("roll out"),
		Priority:    domain.TemplatePriorityHigh,
		TeamID:      int64Ptr(3),
		CreatorID:   1,
		Tags:        []domain.Tag{{ID: 9, Label: "ops"}, {ID: 2, Label: "api"}, {ID: 4, Label: "db"}},
	}
	m.templateRepo.On("GetByID", mock.Anything, int64(5)).Return(template, nil).Once()

	preview, err := service.GetTemplatePreview(context.Background(), 5, 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 9}, preview.TagIDs)
	assert.Equal(t, int64(5), preview.OriginTemplateID)
	assert.Equal(t, "Deploy", preview.Name)
	assert.Equal(t, "roll out", *preview.Description)
	assert.Equal(t, domain.TemplatePriorityHigh, preview.Priority)
	assert.Equal(t, int64(3), *preview.TeamID)
	assert.Len(t, preview.Tags, 3)
	m.assertExpectations(t)
}
