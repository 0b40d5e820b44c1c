package handler

import "net/http"

func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	tag, err := h.tagService.CreateTag(r.Context(), req.Label)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, TagResponse{ID: tag.ID, Label: tag.Label})
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.ListTags(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, TagResponse{ID: tag.ID, Label: tag.Label})
	}
	h.writeJSON(w, r, http.StatusOK, response)
}
