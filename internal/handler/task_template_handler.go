package handler

import (
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
	"github.com/bagdasarian/taskboard/internal/service"
)

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req CreateTemplateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	template, err := h.templateService.CreateTemplate(r.Context(), service.CreateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    domain.TemplatePriority(req.DefaultPriority),
		CreatorID:   req.UserID,
		TeamID:      req.TeamID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, domainTemplateToHTTP(template))
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	userID, err := requiredQueryInt64(r, "userId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	teamID, err := queryInt64(r, "teamId")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	templates, total, err := h.templateService.ListTemplates(
		r.Context(),
		userID,
		teamID,
		r.URL.Query().Get("search"),
		page,
		limit,
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := ListTemplatesResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
		Total:     total,
	}
	for _, template := range templates {
		response.Templates = append(response.Templates, domainTemplateToHTTP(template))
	}

	h.writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	id, userID, err := pathIDAndUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	template, err := h.templateService.GetTemplateByID(r.Context(), id, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainTemplateToHTTP(template))
}

func (h *Handler) GetTemplatePreview(w http.ResponseWriter, r *http.Request) {
	id, userID, err := pathIDAndUser(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	preview, err := h.templateService.GetTemplatePreview(r.Context(), id, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainPreviewToHTTP(preview))
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req UpdateTemplateRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	template, err := h.templateService.UpdateTemplate(r.Context(), id, req.UserID, service.UpdateTemplateInput{
		Name:        req.Name,
		Description: req.Description,
		Priority:    templatePriorityPtr(req.Priority),
		TeamID:      req.TeamID,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, domainTemplateToHTTP(template))
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
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

	if err := h.templateService.DeleteTemplate(r.Context(), id, req.UserID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathIDAndUser(r *http.Request) (int64, int64, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, 0, err
	}
	userID, err := requiredQueryInt64(r, "userId")
	if err != nil {
		return 0, 0, err
	}
	return id, userID, nil
}
