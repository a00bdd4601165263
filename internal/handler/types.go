package handler

import (
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// Candidate is one companion search result.
type Candidate struct {
	UserID                string   `json:"userId"`
	Nickname              string   `json:"nickname"`
	Bio                   string   `json:"bio"`
	ProfileImageURL       string   `json:"profileImageUrl"`
	Gender                string   `json:"gender"`
	AgeRange              string   `json:"ageRange"`
	TravelStyles          []string `json:"travelStyles"`
	Interests             []string `json:"interests"`
	PreferredDestinations []string `json:"preferredDestinations"`
}

// SearchResponse is the body of GET /api/users/search.
type SearchResponse struct {
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
	Users  []Candidate `json:"users"`
}

// Profile is the public representation of a profile.
type Profile struct {
	UserID                string    `json:"userId"`
	Nickname              string    `json:"nickname"`
	Bio                   string    `json:"bio"`
	ProfileImageURL       string    `json:"profileImageUrl"`
	Gender                string    `json:"gender"`
	AgeRange              string    `json:"ageRange"`
	TravelStyles          []string  `json:"travelStyles"`
	Interests             []string  `json:"interests"`
	PreferredDestinations []string  `json:"preferredDestinations"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ProfileRequest is the body of PATCH /api/users/{userId}/profile.
// Omitted fields are cleared.
type ProfileRequest struct {
	Nickname              string   `json:"nickname"`
	Bio                   string   `json:"bio"`
	ProfileImageURL       string   `json:"profileImageUrl"`
	Gender                string   `json:"gender"`
	AgeRange              string   `json:"ageRange"`
	TravelStyles          []string `json:"travelStyles"`
	Interests             []string `json:"interests"`
	PreferredDestinations []string `json:"preferredDestinations"`
}

// ProfileImageRequest is the body of POST /api/users/{userId}/profile/image.
type ProfileImageRequest struct {
	ProfileImageURL string `json:"profileImageUrl"`
}

// User is the public representation of an account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the body of the login and register endpoints.
type AuthResponse struct {
	User    User `json:"user"`
	Created bool `json:"created"`
}

// Itinerary is the public representation of an itinerary.
type Itinerary struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	StartDate openapi_types.Date `json:"startDate"`
	EndDate   openapi_types.Date `json:"endDate"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ItineraryRequest is the body of POST /api/itineraries.
type ItineraryRequest struct {
	Title     string             `json:"title"`
	StartDate openapi_types.Date `json:"startDate"`
	EndDate   openapi_types.Date `json:"endDate"`
}

// Tag is one entry of the tag vocabulary.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// ListResponse wraps a list so the body is always an object with an array.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// --- mapping helpers --------------------------------------------------------

func candidateToResponse(c domain.Candidate) Candidate {
	return Candidate{
		UserID:                c.UserID,
		Nickname:              c.Nickname,
		Bio:                   c.Bio,
		ProfileImageURL:       c.ProfileImageURL,
		Gender:                string(c.Gender),
		AgeRange:              string(c.AgeRange),
		TravelStyles:          nonNil(c.TravelStyles),
		Interests:             nonNil(c.Interests),
		PreferredDestinations: nonNil(c.PreferredDestinations),
	}
}

func profileToResponse(p domain.Profile) Profile {
	return Profile{
		UserID:                p.UserID,
		Nickname:              p.Nickname,
		Bio:                   p.Bio,
		ProfileImageURL:       p.ProfileImageURL,
		Gender:                string(p.Gender),
		AgeRange:              string(p.AgeRange),
		TravelStyles:          nonNil(p.TravelStyles),
		Interests:             nonNil(p.Interests),
		PreferredDestinations: nonNil(p.PreferredDestinations),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func (b ProfileRequest) toDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Nickname:              b.Nickname,
		Bio:                   b.Bio,
		ProfileImageURL:       b.ProfileImageURL,
		Gender:                domain.Gender(b.Gender),
		AgeRange:              domain.AgeRange(b.AgeRange),
		TravelStyles:          nonNil(b.TravelStyles),
		Interests:             nonNil(b.Interests),
		PreferredDestinations: nonNil(b.PreferredDestinations),
	}
}

func userToResponse(u domain.User) User {
	return User{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func itineraryToResponse(it domain.Itinerary) Itinerary {
	return Itinerary{
		ID:        it.ID,
		Title:     it.Title,
		StartDate: openapi_types.Date{Time: it.StartDate},
		EndDate:   openapi_types.Date{Time: it.EndDate},
		CreatedAt: it.CreatedAt,
	}
}

func tagToResponse(t domain.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name, Type: string(t.Type)}
}

// nonNil keeps JSON arrays from being encoded as null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
