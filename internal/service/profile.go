package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
)

const (
	nicknameMinLen     = 2
	nicknameMaxLen     = 20
	bioMaxLen          = 500
	imageURLMaxLen     = 2048
	listMaxEntries     = 10
	listEntryMaxLen    = 30
	createProfileTries = 5
)

// ProfileService reads profiles, creating them lazily, and gates every
// profile mutation behind an ownership check and bounds validation.
type ProfileService struct {
	users     repo.UserRepo
	profiles  repo.ProfileRepo
	nicknames *NicknameAllocator
}

// NewProfileService constructs a ProfileService. Nickname availability is
// checked against profiles.
func NewProfileService(users repo.UserRepo, profiles repo.ProfileRepo) *ProfileService {
	return &ProfileService{
		users:     users,
		profiles:  profiles,
		nicknames: NewNicknameAllocator(profiles),
	}
}

// Get returns the profile of userID. A user without a profile gets an empty
// one with an allocated nickname; created reports whether that happened.
func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, bool, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return domain.Profile{}, false, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	p, created, err := s.ensureProfile(ctx, userID)
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("service.ProfileService.Get: %w", err)
	}
	return p, created, nil
}

// ensureProfile reads the profile of userID or creates it. Losing a nickname
// race to a concurrent insert is retried with a fresh nickname.
func (s *ProfileService) ensureProfile(ctx context.Context, userID string) (domain.Profile, bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Profile{}, false, err
	}

	for range createProfileTries {
		nickname, err := s.nicknames.Allocate(ctx)
		if err != nil {
			return domain.Profile{}, false, err
		}
		p, created, err := s.profiles.CreateIfAbsent(ctx, userID, nickname)
		if errors.Is(err, domain.ErrConflict) {
			continue
		}
		return p, created, err
	}
	return domain.Profile{}, false, fmt.Errorf("no free nickname after %d attempts: %w", createProfileTries, domain.ErrConflict)
}

// Update replaces the profile of userID with in. Only the owner may update;
// omitted fields are cleared. The caller may keep their current nickname.
func (s *ProfileService) Update(ctx context.Context, caller domain.Identity, userID string, in domain.ProfileUpdate) (domain.Profile, error) {
	if _, err := requireOwner(ctx, s.users, caller, userID); err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}

	in, err := normalizeProfileUpdate(in)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}

	taken, err := s.nicknames.TakenByOther(ctx, in.Nickname, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	if taken {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: nickname %q: %w", in.Nickname, domain.ErrConflict)
	}

	p, err := s.profiles.Update(ctx, userID, in)
	if errors.Is(err, domain.ErrNotFound) {
		// First write before any read: create the row under the requested nickname.
		if _, _, err = s.profiles.CreateIfAbsent(ctx, userID, in.Nickname); err == nil {
			p, err = s.profiles.Update(ctx, userID, in)
		}
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Update: %w", err)
	}
	return p, nil
}

// UpdateImage sets only the profile image of userID. Only the owner may do so.
func (s *ProfileService) UpdateImage(ctx context.Context, caller domain.Identity, userID, imageURL string) (domain.Profile, error) {
	if _, err := requireOwner(ctx, s.users, caller, userID); err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UpdateImage: %w", err)
	}

	imageURL = strings.TrimSpace(imageURL)
	switch {
	case imageURL == "":
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UpdateImage: %w", invalid("profileImageUrl is required"))
	case runeLen(imageURL) > imageURLMaxLen:
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UpdateImage: %w", invalid("profileImageUrl must be at most %d characters", imageURLMaxLen))
	}

	if _, _, err := s.ensureProfile(ctx, userID); err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UpdateImage: %w", err)
	}
	if err := s.profiles.UpdateImage(ctx, userID, imageURL); err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UpdateImage: %w", err)
	}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.UpdateImage: %w", err)
	}
	return p, nil
}

// normalizeProfileUpdate trims the input and checks it field by field in
// declaration order. The first violation is returned.
func normalizeProfileUpdate(in domain.ProfileUpdate) (domain.ProfileUpdate, error) {
	in.Nickname = strings.TrimSpace(in.Nickname)
	in.Bio = strings.TrimSpace(in.Bio)
	in.ProfileImageURL = strings.TrimSpace(in.ProfileImageURL)

	if n := runeLen(in.Nickname); n < nicknameMinLen || n > nicknameMaxLen {
		return in, invalid("nickname must be between %d and %d characters", nicknameMinLen, nicknameMaxLen)
	}
	if runeLen(in.Bio) > bioMaxLen {
		return in, invalid("bio must be at most %d characters", bioMaxLen)
	}
	if runeLen(in.ProfileImageURL) > imageURLMaxLen {
		return in, invalid("profileImageUrl must be at most %d characters", imageURLMaxLen)
	}
	if !in.Gender.Valid() {
		return in, invalid("unknown gender %q", in.Gender)
	}
	if !in.AgeRange.Valid() {
		return in, invalid("unknown ageRange %q", in.AgeRange)
	}

	var err error
	if in.TravelStyles, err = checkList("travelStyles", in.TravelStyles); err != nil {
		return in, err
	}
	if in.Interests, err = checkList("interests", in.Interests); err != nil {
		return in, err
	}
	if in.PreferredDestinations, err = checkList("preferredDestinations", in.PreferredDestinations); err != nil {
		return in, err
	}
	return in, nil
}

// checkList bounds a profile list. Entries are trimmed first; blank entries
// are rejected rather than silently dropped.
func checkList(field string, values []string) ([]string, error) {
	if len(values) > listMaxEntries {
		return nil, invalid("%s must have at most %d entries", field, listMaxEntries)
	}
	for _, v := range values {
		if n := runeLen(strings.TrimSpace(v)); n < 1 || n > listEntryMaxLen {
			return nil, invalid("%s entries must be between 1 and %d characters", field, listEntryMaxLen)
		}
	}
	return normalizeSet(values), nil
}
