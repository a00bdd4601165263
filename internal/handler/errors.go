package handler

import (
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// ErrorResponse is the envelope of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeErrorBody(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// fail maps a service error onto its HTTP response. what names the resource
// the handler was working on (e.g. "user") and is used in 404/403 messages.
// Anything unrecognised is logged and answered with a bare 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, r, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, r, http.StatusNotFound, "not_found", what+" not found")
	case errors.Is(err, domain.ErrForbidden):
		writeErrorBody(w, r, http.StatusForbidden, "forbidden", "only the owner may modify this "+what)
	case errors.Is(err, domain.ErrConflict):
		writeErrorBody(w, r, http.StatusConflict, "conflict", "nickname is already taken")
	case errors.Is(err, domain.ErrUnauthorized):
		writeErrorBody(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
	default:
		s.log.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeErrorBody(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// requestError answers a request rejected before reaching the service layer
// (e.g. malformed body or query parameter).
func requestError(w http.ResponseWriter, r *http.Request, message string) {
	writeErrorBody(w, r, http.StatusUnprocessableEntity, "validation_error", message)
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.ProfileService.Update: validation error: bio must be ..." → "bio must be ..."
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, domain.ErrValidation.Error()+": "); ok && after != "" {
		return after
	}
	return msg
}
