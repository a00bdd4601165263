package domain

import "time"

// SearchFilter is a fully parsed companion search request.
// Every criterion is optional; zero values disable the corresponding clause.
type SearchFilter struct {
	// RequesterSubject is excluded from every result set.
	RequesterSubject string

	// Keyword is matched as a substring of nickname or bio.
	Keyword string
	// Destination is matched as a substring of an itinerary title.
	Destination string
	// PreferredLocation is matched as a substring of any preferred destination.
	PreferredLocation string

	Gender   Gender
	AgeRange AgeRange

	// TravelStyles and Interests match when the profile carries at least one
	// of the listed tags (OR within the field).
	TravelStyles []string
	Interests    []string

	// StartDate and EndDate select candidates owning an itinerary that
	// overlaps the interval. Either bound may be nil.
	StartDate *time.Time
	EndDate   *time.Time

	Page PageParams
}

// HasItineraryFilter reports whether any itinerary criterion is active.
// A zero date bound counts as unset.
func (f SearchFilter) HasItineraryFilter() bool {
	return f.Destination != "" || hasBound(f.StartDate) || hasBound(f.EndDate)
}

func hasBound(t *time.Time) bool {
	return t != nil && !t.IsZero()
}

// Candidate is the projection of one matching user returned by search.
// It intentionally carries no auth subject.
type Candidate struct {
	UserID                string
	Nickname              string
	Bio                   string
	ProfileImageURL       string
	Gender                Gender
	AgeRange              AgeRange
	TravelStyles          []string
	Interests             []string
	PreferredDestinations []string
}

// SearchResult is one page of candidates plus the total match count.
type SearchResult struct {
	Total  int64
	Limit  int
	Offset int
	Users  []Candidate
}
