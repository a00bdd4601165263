package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/middleware"
)

// CreateItinerary handles POST /api/itineraries.
func (s *Server) CreateItinerary(w http.ResponseWriter, r *http.Request) {
	var body ItineraryRequest
	if !decodeBody(w, r, &body) {
		return
	}

	it, err := s.itineraries.Create(r.Context(), middleware.IdentityFrom(r.Context()), domain.Itinerary{
		Title:     body.Title,
		StartDate: body.StartDate.Time,
		EndDate:   body.EndDate.Time,
	})
	if err != nil {
		s.fail(w, r, err, "itinerary")
		return
	}
	writeJSON(w, r, http.StatusCreated, itineraryToResponse(it))
}

// ListItineraries handles GET /api/itineraries: the caller's own itineraries.
func (s *Server) ListItineraries(w http.ResponseWriter, r *http.Request) {
	its, err := s.itineraries.List(r.Context(), middleware.IdentityFrom(r.Context()))
	if err != nil {
		s.fail(w, r, err, "itinerary")
		return
	}
	data := make([]Itinerary, len(its))
	for i, it := range its {
		data[i] = itineraryToResponse(it)
	}
	writeJSON(w, r, http.StatusOK, ListResponse[Itinerary]{Data: data})
}

// GetItinerary handles GET /api/itineraries/{id}.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := itineraryID(w, r)
	if !ok {
		return
	}
	it, err := s.itineraries.Get(r.Context(), middleware.IdentityFrom(r.Context()), id)
	if err != nil {
		s.fail(w, r, err, "itinerary")
		return
	}
	writeJSON(w, r, http.StatusOK, itineraryToResponse(it))
}

// UpdateItinerary handles PATCH /api/itineraries/{id}. The body replaces
// title and both dates.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := itineraryID(w, r)
	if !ok {
		return
	}
	var body ItineraryRequest
	if !decodeBody(w, r, &body) {
		return
	}

	it, err := s.itineraries.Update(r.Context(), middleware.IdentityFrom(r.Context()), id, domain.Itinerary{
		Title:     body.Title,
		StartDate: body.StartDate.Time,
		EndDate:   body.EndDate.Time,
	})
	if err != nil {
		s.fail(w, r, err, "itinerary")
		return
	}
	writeJSON(w, r, http.StatusOK, itineraryToResponse(it))
}

// DeleteItinerary handles DELETE /api/itineraries/{id}.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id, ok := itineraryID(w, r)
	if !ok {
		return
	}
	if err := s.itineraries.Delete(r.Context(), middleware.IdentityFrom(r.Context()), id); err != nil {
		s.fail(w, r, err, "itinerary")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// itineraryID parses the {id} path parameter. A malformed id cannot name an
// existing itinerary, so it is answered with 404.
func itineraryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorBody(w, r, http.StatusNotFound, "not_found", "itinerary not found")
		return uuid.Nil, false
	}
	return id, true
}
