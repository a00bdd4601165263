package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-mate/backend/internal/middleware"
)

// Login handles POST /api/auth/login and POST /api/auth/register.
// The bearer credential has already been verified; this binds it to an
// internal user, creating one on first contact (201) or returning the
// existing one (200).
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	u, created, err := s.users.Ensure(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err, "user")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, AuthResponse{User: userToResponse(u), Created: created})
}

// DeleteUser handles DELETE /api/users/{userId}.
func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := s.users.Delete(r.Context(), middleware.IdentityFrom(r.Context()), chi.URLParam(r, "userId"))
	if err != nil {
		s.fail(w, r, err, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
