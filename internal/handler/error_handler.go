package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/taskboard/internal/domain"
)

const codeInternalError = "INTERNAL_ERROR"

// handleError отвечает 400 на любую доменную ошибку, код ошибки уходит в теле
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		h.log.DebugContext(r.Context(), "request rejected",
			"trace_id", TraceID(r.Context()),
			"code", domainErr.Code,
			"error", domainErr.Message,
		)
		h.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{
			Message: domainErr.Message,
			Code:    domainErr.Code,
		})
		return
	}

	h.log.ErrorContext(r.Context(), "request failed",
		"trace_id", TraceID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	h.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{
		Message: "internal server error",
		Code:    codeInternalError,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}

func badRequest(message string) *domain.DomainError {
	return &domain.DomainError{
		Code:    domain.CodeBadRequest,
		Message: message,
	}
}
