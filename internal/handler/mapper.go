package handler

import (
	"github.com/bagdasarian/taskboard/internal/domain"
)

func domainTagsToHTTP(tags []domain.Tag) []TagResponse {
	result := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, TagResponse{ID: tag.ID, Label: tag.Label})
	}
	return result
}

func domainTemplateToHTTP(template *domain.TaskTemplate) TemplateResponse {
	return TemplateResponse{
		ID:              template.ID,
		Name:            template.Name,
		Description:     template.Description,
		DefaultPriority: string(template.Priority),
		TeamID:          template.TeamID,
		CreatorID:       template.CreatorID,
		TagIDs:          template.TagIDs(),
		Tags:            domainTagsToHTTP(template.Tags),
		CreatedAt:       template.CreatedAt,
		UpdatedAt:       template.UpdatedAt,
	}
}

func domainPreviewToHTTP(preview *domain.TemplatePreview) TemplatePreviewResponse {
	return TemplatePreviewResponse{
		Name:             preview.Name,
		Description:      preview.Description,
		Priority:         string(preview.Priority),
		TeamID:           preview.TeamID,
		TagIDs:           preview.TagIDs,
		Tags:             domainTagsToHTTP(preview.Tags),
		OriginTemplateID: preview.OriginTemplateID,
	}
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:               task.ID,
		Title:            task.Title,
		Description:      task.Description,
		TeamID:           task.TeamID,
		CreatorID:        task.CreatorID,
		Priority:         string(task.Priority),
		Status:           string(task.Status),
		DueDate:          task.DueDate,
		OriginTemplateID: task.OriginTemplateID,
		CreatedAt:        task.CreatedAt,
		UpdatedAt:        task.UpdatedAt,
	}
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	members := make([]TeamMemberResponse, 0, len(team.Members))
	for _, member := range team.Members {
		members = append(members, TeamMemberResponse{
			UserID: member.UserID,
			Role:   string(member.Role),
		})
	}

	return TeamResponse{
		ID:      team.ID,
		Name:    team.Name,
		Members: members,
	}
}

func templatePriorityPtr(p *string) *domain.TemplatePriority {
	if p == nil {
		return nil
	}
	priority := domain.TemplatePriority(*p)
	return &priority
}

func taskPriorityPtr(p *string) *domain.TaskPriority {
	if p == nil {
		return nil
	}
	priority := domain.TaskPriority(*p)
	return &priority
}
