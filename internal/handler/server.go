// Package handler implements the HTTP handlers for the Travel Mate API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (search.go, profile.go, etc.) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// The interfaces below are the business operations the handlers depend on.
// Defining them here, in the consumer package, lets handler tests inject
// mocks without touching the database or service layer.

// Searcher runs companion searches.
type Searcher interface {
	Search(ctx context.Context, caller domain.Identity, f domain.SearchFilter) (domain.SearchResult, error)
}

// ProfileServicer reads and mutates profiles.
type ProfileServicer interface {
	Get(ctx context.Context, userID string) (domain.Profile, bool, error)
	Update(ctx context.Context, caller domain.Identity, userID string, in domain.ProfileUpdate) (domain.Profile, error)
	UpdateImage(ctx context.Context, caller domain.Identity, userID, imageURL string) (domain.Profile, error)
}

// UserServicer bootstraps and deletes accounts.
type UserServicer interface {
	Ensure(ctx context.Context, caller domain.Identity) (domain.User, bool, error)
	Delete(ctx context.Context, caller domain.Identity, userID string) error
}

// ItineraryServicer manages the caller's itineraries.
type ItineraryServicer interface {
	Create(ctx context.Context, caller domain.Identity, it domain.Itinerary) (domain.Itinerary, error)
	List(ctx context.Context, caller domain.Identity) ([]domain.Itinerary, error)
	Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (domain.Itinerary, error)
	Update(ctx context.Context, caller domain.Identity, id uuid.UUID, in domain.Itinerary) (domain.Itinerary, error)
	Delete(ctx context.Context, caller domain.Identity, id uuid.UUID) error
}

// TagLister lists the tag vocabulary.
type TagLister interface {
	List(ctx context.Context, typ domain.TagType) ([]domain.Tag, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	search      Searcher
	profiles    ProfileServicer
	users       UserServicer
	itineraries ItineraryServicer
	tags        TagLister
	log         *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(search Searcher, profiles ProfileServicer, users UserServicer, itineraries ItineraryServicer, tags TagLister, log *slog.Logger) *Server {
	return &Server{
		search:      search,
		profiles:    profiles,
		users:       users,
		itineraries: itineraries,
		tags:        tags,
		log:         log,
	}
}

// Handler mounts every route of s on a chi router. apiMiddleware wraps only
// the /api subtree; authentication belongs there so /healthz and
// /openapi.yaml stay public.
func Handler(s *Server, apiMiddleware ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware...)

		r.Post("/auth/login", s.Login)
		r.Post("/auth/register", s.Login)

		r.Get("/users/search", s.SearchUsers)
		r.Delete("/users/{userId}", s.DeleteUser)
		r.Get("/users/{userId}/profile", s.GetProfile)
		r.Patch("/users/{userId}/profile", s.UpdateProfile)
		r.Post("/users/{userId}/profile/image", s.UpdateProfileImage)

		r.Get("/itineraries", s.ListItineraries)
		r.Post("/itineraries", s.CreateItinerary)
		r.Get("/itineraries/{id}", s.GetItinerary)
		r.Patch("/itineraries/{id}", s.UpdateItinerary)
		r.Delete("/itineraries/{id}", s.DeleteItinerary)

		r.Get("/tags", s.ListTags)
	})

	return r
}
