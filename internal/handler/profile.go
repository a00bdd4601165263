package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-mate/backend/internal/middleware"
)

// GetProfile handles GET /api/users/{userId}/profile.
// A user without a profile gets an empty one created on the spot; the
// response is then 201 instead of 200.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, created, err := s.profiles.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		s.fail(w, r, err, "user")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, profileToResponse(p))
}

// UpdateProfile handles PATCH /api/users/{userId}/profile.
// The body replaces the whole profile; only its owner may send it.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body ProfileRequest
	if !decodeBody(w, r, &body) {
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	p, err := s.profiles.Update(r.Context(), caller, chi.URLParam(r, "userId"), body.toDomain())
	if err != nil {
		s.fail(w, r, err, "profile")
		return
	}
	writeJSON(w, r, http.StatusOK, profileToResponse(p))
}

// UpdateProfileImage handles POST /api/users/{userId}/profile/image.
// It stores an already-uploaded image reference; no file data is accepted.
func (s *Server) UpdateProfileImage(w http.ResponseWriter, r *http.Request) {
	var body ProfileImageRequest
	if !decodeBody(w, r, &body) {
		return
	}

	caller := middleware.IdentityFrom(r.Context())
	p, err := s.profiles.UpdateImage(r.Context(), caller, chi.URLParam(r, "userId"), body.ProfileImageURL)
	if err != nil {
		s.fail(w, r, err, "profile")
		return
	}
	writeJSON(w, r, http.StatusOK, profileToResponse(p))
}
