package service

import (
	"context"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
)

// UserService maps verified callers onto internal user records.
type UserService struct {
	repo  repo.UserRepo
	newID func() string
}

// NewUserService constructs a UserService backed by the provided UserRepo.
// New users get a ULID as their internal id.
func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r, newID: func() string { return ulid.Make().String() }}
}

// Ensure returns the user bound to the caller's subject, creating it on first
// contact. created reports whether this call inserted the row.
func (s *UserService) Ensure(ctx context.Context, caller domain.Identity) (domain.User, bool, error) {
	if caller.IsZero() {
		return domain.User{}, false, fmt.Errorf("service.UserService.Ensure: %w", domain.ErrUnauthorized)
	}
	u, created, err := s.repo.Ensure(ctx, s.newID(), caller.Subject, caller.Email)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("service.UserService.Ensure: %w", err)
	}
	return u, created, nil
}

// Delete removes the account userID. Only its owner may do so; the profile,
// its tag links and itineraries go with it.
func (s *UserService) Delete(ctx context.Context, caller domain.Identity, userID string) error {
	if _, err := requireOwner(ctx, s.repo, caller, userID); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}

// userLookup is the slice of repo.UserRepo the ownership check needs.
type userLookup interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// requireOwner resolves userID and checks that it belongs to caller.
// Returns domain.ErrNotFound for an unknown user and domain.ErrForbidden for
// somebody else's.
func requireOwner(ctx context.Context, users userLookup, caller domain.Identity, userID string) (domain.User, error) {
	if caller.IsZero() {
		return domain.User{}, domain.ErrUnauthorized
	}
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if u.Subject != caller.Subject {
		return domain.User{}, domain.ErrForbidden
	}
	return u, nil
}
