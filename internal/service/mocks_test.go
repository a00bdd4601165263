package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field; set only the ones your test needs.

// ---- UserRepo --------------------------------------------------------------

type mockUserRepo struct {
	ensure       func(ctx context.Context, id, subject, email string) (domain.User, bool, error)
	getByID      func(ctx context.Context, id string) (domain.User, error)
	getBySubject func(ctx context.Context, subject string) (domain.User, error)
	delete       func(ctx context.Context, id string) error
}

func (m *mockUserRepo) Ensure(ctx context.Context, id, subject, email string) (domain.User, bool, error) {
	return m.ensure(ctx, id, subject, email)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetBySubject(ctx context.Context, subject string) (domain.User, error) {
	return m.getBySubject(ctx, subject)
}
func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

// usersWith returns a UserRepo whose GetByID knows exactly the given users.
func usersWith(users ...domain.User) *mockUserRepo {
	return &mockUserRepo{
		getByID: func(_ context.Context, id string) (domain.User, error) {
			for _, u := range users {
				if u.ID == id {
					return u, nil
				}
			}
			return domain.User{}, domain.ErrNotFound
		},
	}
}

// ---- ProfileRepo -----------------------------------------------------------

type mockProfileRepo struct {
	getByUserID    func(ctx context.Context, userID string) (domain.Profile, error)
	createIfAbsent func(ctx context.Context, userID, nickname string) (domain.Profile, bool, error)
	update         func(ctx context.Context, userID string, in domain.ProfileUpdate) (domain.Profile, error)
	updateImage    func(ctx context.Context, userID, imageURL string) error
	nicknameTaken  func(ctx context.Context, nickname, excludeUserID string) (bool, error)
}

func (m *mockProfileRepo) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	return m.getByUserID(ctx, userID)
}
func (m *mockProfileRepo) CreateIfAbsent(ctx context.Context, userID, nickname string) (domain.Profile, bool, error) {
	return m.createIfAbsent(ctx, userID, nickname)
}
func (m *mockProfileRepo) Update(ctx context.Context, userID string, in domain.ProfileUpdate) (domain.Profile, error) {
	return m.update(ctx, userID, in)
}
func (m *mockProfileRepo) UpdateImage(ctx context.Context, userID, imageURL string) error {
	return m.updateImage(ctx, userID, imageURL)
}
func (m *mockProfileRepo) NicknameTaken(ctx context.Context, nickname, excludeUserID string) (bool, error) {
	return m.nicknameTaken(ctx, nickname, excludeUserID)
}

var _ repo.ProfileRepo = (*mockProfileRepo)(nil)

// ---- TagRepo ---------------------------------------------------------------

type mockTagRepo struct {
	upsert        func(ctx context.Context, name string, typ domain.TagType) (domain.Tag, error)
	list          func(ctx context.Context, typ domain.TagType) ([]domain.Tag, error)
	linkToProfile func(ctx context.Context, profileID, tagID uuid.UUID) error
	clearProfile  func(ctx context.Context, profileID uuid.UUID, typ domain.TagType) error
	listByProfile func(ctx context.Context, profileID uuid.UUID) ([]domain.Tag, error)
}

func (m *mockTagRepo) Upsert(ctx context.Context, name string, typ domain.TagType) (domain.Tag, error) {
	return m.upsert(ctx, name, typ)
}
func (m *mockTagRepo) List(ctx context.Context, typ domain.TagType) ([]domain.Tag, error) {
	return m.list(ctx, typ)
}
func (m *mockTagRepo) LinkToProfile(ctx context.Context, profileID, tagID uuid.UUID) error {
	return m.linkToProfile(ctx, profileID, tagID)
}
func (m *mockTagRepo) ClearProfile(ctx context.Context, profileID uuid.UUID, typ domain.TagType) error {
	return m.clearProfile(ctx, profileID, typ)
}
func (m *mockTagRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Tag, error) {
	return m.listByProfile(ctx, profileID)
}

var _ repo.TagRepo = (*mockTagRepo)(nil)

// ---- ItineraryRepo ---------------------------------------------------------

type mockItineraryRepo struct {
	create     func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	getByID    func(ctx context.Context, userID string, id uuid.UUID) (domain.Itinerary, error)
	listByUser func(ctx context.Context, userID string) ([]domain.Itinerary, error)
	update     func(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)
	delete     func(ctx context.Context, userID string, id uuid.UUID) error
}

func (m *mockItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, it)
}
func (m *mockItineraryRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Itinerary, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockItineraryRepo) ListByUser(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	return m.update(ctx, it)
}
func (m *mockItineraryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

// ---- SearchRepo ------------------------------------------------------------

type mockSearchRepo struct {
	search func(ctx context.Context, f domain.SearchFilter) ([]domain.Candidate, int64, error)
}

func (m *mockSearchRepo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Candidate, int64, error) {
	return m.search(ctx, f)
}

var _ repo.SearchRepo = (*mockSearchRepo)(nil)
