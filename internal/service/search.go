// Package service contains the business logic for the Travel Mate API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
)

// SearchService runs companion searches on behalf of an authenticated caller.
type SearchService struct {
	repo repo.SearchRepo
}

// NewSearchService constructs a SearchService backed by the provided SearchRepo.
func NewSearchService(r repo.SearchRepo) *SearchService {
	return &SearchService{repo: r}
}

// Search returns the page of candidates matching f, never including the caller.
//
// Sentinel values ("Any", "무관", empty) disable the gender and age filters.
// Tag sets are trimmed and de-duplicated; a set left empty adds no constraint.
func (s *SearchService) Search(ctx context.Context, caller domain.Identity, f domain.SearchFilter) (domain.SearchResult, error) {
	if caller.IsZero() {
		return domain.SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", domain.ErrUnauthorized)
	}

	f, err := normalizeFilter(f)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}
	f.RequesterSubject = caller.Subject

	users, total, err := s.repo.Search(ctx, f)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}
	return domain.SearchResult{
		Total:  total,
		Limit:  f.Page.Limit,
		Offset: f.Page.Offset,
		Users:  users,
	}, nil
}

// normalizeFilter validates enum filters and brings every field to the shape
// the repo expects.
func normalizeFilter(f domain.SearchFilter) (domain.SearchFilter, error) {
	f.Keyword = strings.TrimSpace(f.Keyword)
	f.Destination = strings.TrimSpace(f.Destination)
	f.PreferredLocation = strings.TrimSpace(f.PreferredLocation)

	if domain.IsAnyFilter(strings.TrimSpace(string(f.Gender))) {
		f.Gender = domain.GenderUnset
	} else if !f.Gender.Valid() {
		return f, invalid("unknown gender %q", f.Gender)
	}

	if domain.IsAnyFilter(strings.TrimSpace(string(f.AgeRange))) {
		f.AgeRange = domain.AgeRangeUnset
	} else if !f.AgeRange.Valid() {
		return f, invalid("unknown ageRange %q", f.AgeRange)
	}

	f.TravelStyles = normalizeSet(f.TravelStyles)
	f.Interests = normalizeSet(f.Interests)

	// A zero bound carries no constraint.
	if f.StartDate != nil && f.StartDate.IsZero() {
		f.StartDate = nil
	}
	if f.EndDate != nil && f.EndDate.IsZero() {
		f.EndDate = nil
	}
	if f.StartDate != nil && f.EndDate != nil && f.StartDate.After(*f.EndDate) {
		return f, invalid("startDate must not be after endDate")
	}

	if f.Page.Limit < 1 || f.Page.Limit > domain.MaxPageLimit || f.Page.Offset < 0 {
		f.Page = domain.NewPageParams(&f.Page.Limit, &f.Page.Offset)
	}
	return f, nil
}
