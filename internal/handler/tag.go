package handler

import (
	"net/http"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// ListTags handles GET /api/tags.
// The optional ?type= parameter restricts the list to travel_style or interest.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tags.List(r.Context(), domain.TagType(r.URL.Query().Get("type")))
	if err != nil {
		s.fail(w, r, err, "tag")
		return
	}
	data := make([]Tag, len(tags))
	for i, t := range tags {
		data[i] = tagToResponse(t)
	}
	writeJSON(w, r, http.StatusOK, ListResponse[Tag]{Data: data})
}
