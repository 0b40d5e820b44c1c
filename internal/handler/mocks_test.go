package handler

import (
	"context"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockTaskTemplateService struct {
	mock.Mock
}

func (m *MockTaskTemplateService) CreateTemplate(ctx context.Context, input service.CreateTemplateInput) (*domain.TaskTemplate, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskTemplate), args.Error(1)
}

func (m *MockTaskTemplateService) ListTemplates(ctx context.Context, userID int64, teamID *int64, search string, page, limit int) ([]*domain.TaskTemplate, int, error) {
	args := m.Called(ctx, userID, teamID, search, page, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.TaskTemplate), args.Int(1), args.Error(2)
}

func (m *MockTaskTemplateService) GetTemplateByID(ctx context.Context, id, userID int64) (*domain.TaskTemplate, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskTemplate), args.Error(1)
}

func (m *MockTaskTemplateService) UpdateTemplate(ctx context.Context, id, userID int64, input service.UpdateTemplateInput) (*domain.TaskTemplate, error) {
	args := m.Called(ctx, id, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskTemplate), args.Error(1)
}

func (m *MockTaskTemplateService) DeleteTemplate(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockTaskTemplateService) GetTemplatePreview(ctx context.Context, id, userID int64) (*domain.TemplatePreview, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TemplatePreview), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, input service.CreateTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) GetAllTasks(ctx context.Context, userID int64) ([]*domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskService) GetTasksByStatus(ctx context.Context, userID int64, status domain.TaskStatus) ([]*domain.Task, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskService) UpdateTask(ctx context.Context, id, actorUserID int64, input service.UpdateTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, id, actorUserID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) ChangeTaskStatus(ctx context.Context, id, actorUserID int64, status domain.TaskStatus) (*domain.Task, error) {
	args := m.Called(ctx, id, actorUserID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id, actorUserID int64) error {
	args := m.Called(ctx, id, actorUserID)
	return args.Error(0)
}

func (m *MockTaskService) GetTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, name string, role domain.UserRole) (*domain.User, error) {
	args := m.Called(ctx, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) CreateTag(ctx context.Context, label string) (*domain.Tag, error) {
	args := m.Called(ctx, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockTagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tag), args.Error(1)
}
