package middleware

import (
	"net/http"

	"github.com/go-chi/render"
)

// errorResponse mirrors the API error envelope written by the handler package.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError renders the standard error envelope with the given status.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: errorDetail{Code: code, Message: message}})
}
