package handler

import (
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskInput{
		Title:            req.Title,
		Description:      req.Description,
		TeamID:           req.TeamID,
		UserID:           req.UserID,
		Priority:         domain.TaskPriority(req.Priority),
		DueDate:          req.DueDate.TimePtr(),
		OriginTemplateID: req.OriginTemplateID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, domainTaskToHTTP(task))
}

// ListTasks отдает задачи, видимые пользователю; status сужает выборку
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := requiredQueryInt64(r, "userId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var tasks []*domain.Task
	if status := r.URL.Query().Get("status"); status != "" {
		tasks, err = h.taskService.GetTasksByStatus(r.Context(), userID, domain.TaskStatus(status))
	} else {
		tasks, err = h.taskService.GetAllTasks(r.Context(), userID)
	}
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainTasksToHTTP(tasks))
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.GetTaskByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if task == nil {
		h.writeJSON(w, r, http.StatusNotFound, ErrorResponse{
			Message: domain.ErrTaskNotFound.Message,
			Code:    domain.CodeNotFound,
		})
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateTaskRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.UserID, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    taskPriorityPtr(req.Priority),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ChangeTaskStatusRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.ChangeTaskStatus(r.Context(), id, req.UserID, domain.TaskStatus(req.Status))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainTaskToHTTP(task))
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req ActorRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
