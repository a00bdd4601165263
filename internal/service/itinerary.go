package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
)

const itineraryTitleMaxLen = 100

// callerResolver maps a verified caller to their user record.
// *UserService satisfies it.
type callerResolver interface {
	Ensure(ctx context.Context, caller domain.Identity) (domain.User, bool, error)
}

// ItineraryService manages the caller's own itineraries, which search reads
// for destination and date filters.
type ItineraryService struct {
	users callerResolver
	repo  repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService.
func NewItineraryService(users callerResolver, r repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{users: users, repo: r}
}

// Create validates and persists a new itinerary owned by the caller.
func (s *ItineraryService) Create(ctx context.Context, caller domain.Identity, it domain.Itinerary) (domain.Itinerary, error) {
	it.Title = strings.TrimSpace(it.Title)
	if err := validateItinerary(it); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}

	u, _, err := s.users.Ensure(ctx, caller)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	it.UserID = u.ID

	created, err := s.repo.Create(ctx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Create: %w", err)
	}
	return created, nil
}

// List returns the caller's itineraries ordered by start date.
func (s *ItineraryService) List(ctx context.Context, caller domain.Identity) ([]domain.Itinerary, error) {
	u, _, err := s.users.Ensure(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	its, err := s.repo.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.List: %w", err)
	}
	return its, nil
}

// Get returns one of the caller's itineraries. An itinerary owned by
// someone else is reported as not found.
func (s *ItineraryService) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (domain.Itinerary, error) {
	u, _, err := s.users.Ensure(ctx, caller)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	it, err := s.repo.GetByID(ctx, u.ID, id)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Get: %w", err)
	}
	return it, nil
}

// Update replaces title and dates of one of the caller's itineraries,
// validated as on Create.
func (s *ItineraryService) Update(ctx context.Context, caller domain.Identity, id uuid.UUID, in domain.Itinerary) (domain.Itinerary, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateItinerary(in); err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}

	u, _, err := s.users.Ensure(ctx, caller)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	in.ID = id
	in.UserID = u.ID

	updated, err := s.repo.Update(ctx, in)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.ItineraryService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes one of the caller's itineraries. An itinerary owned by
// someone else is reported as not found.
func (s *ItineraryService) Delete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	u, _, err := s.users.Ensure(ctx, caller)
	if err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, u.ID, id); err != nil {
		return fmt.Errorf("service.ItineraryService.Delete: %w", err)
	}
	return nil
}

func validateItinerary(it domain.Itinerary) error {
	if it.Title == "" {
		return invalid("title is required")
	}
	if runeLen(it.Title) > itineraryTitleMaxLen {
		return invalid("title must be at most %d characters", itineraryTitleMaxLen)
	}
	if it.StartDate.IsZero() || it.EndDate.IsZero() {
		return invalid("startDate and endDate are required")
	}
	if it.EndDate.Before(it.StartDate) {
		return invalid("endDate must not be before startDate")
	}
	return nil
}
