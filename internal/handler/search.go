package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/middleware"
)

// SearchUsers handles GET /api/users/search.
//
// Every query parameter is optional. travelStyles and interests accept
// repeated keys and comma-separated values. limit/offset that are missing or
// unusable fall back to 10/0; malformed dates are rejected with 422.
func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := optionalDate(q, "startDate")
	if err != nil {
		requestError(w, r, "startDate must be a date in YYYY-MM-DD format")
		return
	}
	end, err := optionalDate(q, "endDate")
	if err != nil {
		requestError(w, r, "endDate must be a date in YYYY-MM-DD format")
		return
	}

	f := domain.SearchFilter{
		Keyword:           q.Get("keyword"),
		Destination:       q.Get("destination"),
		PreferredLocation: q.Get("preferredLocation"),
		Gender:            domain.Gender(q.Get("gender")),
		AgeRange:          domain.AgeRange(q.Get("ageRange")),
		TravelStyles:      multiValue(q, "travelStyles"),
		Interests:         multiValue(q, "interests"),
		Page:              domain.NewPageParams(optionalInt(q, "limit"), optionalInt(q, "offset")),
	}
	if start != nil {
		f.StartDate = timePtr(start.Time)
	}
	if end != nil {
		f.EndDate = timePtr(end.Time)
	}

	res, err := s.search.Search(r.Context(), middleware.IdentityFrom(r.Context()), f)
	if err != nil {
		s.fail(w, r, err, "user")
		return
	}

	users := make([]Candidate, len(res.Users))
	for i, c := range res.Users {
		users[i] = candidateToResponse(c)
	}
	writeJSON(w, r, http.StatusOK, SearchResponse{
		Total:  res.Total,
		Limit:  res.Limit,
		Offset: res.Offset,
		Users:  users,
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
