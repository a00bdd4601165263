package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/handler"
	"github.com/pkordes/travel-mate/backend/internal/middleware"
)

// Test doubles for the handler's consumer interfaces.
// Set only the method fields your test needs.

type mockSearcher struct {
	search func(ctx context.Context, caller domain.Identity, f domain.SearchFilter) (domain.SearchResult, error)
}

func (m *mockSearcher) Search(ctx context.Context, caller domain.Identity, f domain.SearchFilter) (domain.SearchResult, error) {
	return m.search(ctx, caller, f)
}

var _ handler.Searcher = (*mockSearcher)(nil)

type mockProfileServicer struct {
	get         func(ctx context.Context, userID string) (domain.Profile, bool, error)
	update      func(ctx context.Context, caller domain.Identity, userID string, in domain.ProfileUpdate) (domain.Profile, error)
	updateImage func(ctx context.Context, caller domain.Identity, userID, imageURL string) (domain.Profile, error)
}

func (m *mockProfileServicer) Get(ctx context.Context, userID string) (domain.Profile, bool, error) {
	return m.get(ctx, userID)
}
func (m *mockProfileServicer) Update(ctx context.Context, caller domain.Identity, userID string, in domain.ProfileUpdate) (domain.Profile, error) {
	return m.update(ctx, caller, userID, in)
}
func (m *mockProfileServicer) UpdateImage(ctx context.Context, caller domain.Identity, userID, imageURL string) (domain.Profile, error) {
	return m.updateImage(ctx, caller, userID, imageURL)
}

var _ handler.ProfileServicer = (*mockProfileServicer)(nil)

type mockUserServicer struct {
	ensure func(ctx context.Context, caller domain.Identity) (domain.User, bool, error)
	delete func(ctx context.Context, caller domain.Identity, userID string) error
}

func (m *mockUserServicer) Ensure(ctx context.Context, caller domain.Identity) (domain.User, bool, error) {
	return m.ensure(ctx, caller)
}
func (m *mockUserServicer) Delete(ctx context.Context, caller domain.Identity, userID string) error {
	return m.delete(ctx, caller, userID)
}

var _ handler.UserServicer = (*mockUserServicer)(nil)

type mockItineraryServicer struct {
	create func(ctx context.Context, caller domain.Identity, it domain.Itinerary) (domain.Itinerary, error)
	list   func(ctx context.Context, caller domain.Identity) ([]domain.Itinerary, error)
	get    func(ctx context.Context, caller domain.Identity, id uuid.UUID) (domain.Itinerary, error)
	update func(ctx context.Context, caller domain.Identity, id uuid.UUID, in domain.Itinerary) (domain.Itinerary, error)
	delete func(ctx context.Context, caller domain.Identity, id uuid.UUID) error
}

func (m *mockItineraryServicer) Create(ctx context.Context, caller domain.Identity, it domain.Itinerary) (domain.Itinerary, error) {
	return m.create(ctx, caller, it)
}
func (m *mockItineraryServicer) List(ctx context.Context, caller domain.Identity) ([]domain.Itinerary, error) {
	return m.list(ctx, caller)
}
func (m *mockItineraryServicer) Get(ctx context.Context, caller domain.Identity, id uuid.UUID) (domain.Itinerary, error) {
	return m.get(ctx, caller, id)
}
func (m *mockItineraryServicer) Update(ctx context.Context, caller domain.Identity, id uuid.UUID, in domain.Itinerary) (domain.Itinerary, error) {
	return m.update(ctx, caller, id, in)
}
func (m *mockItineraryServicer) Delete(ctx context.Context, caller domain.Identity, id uuid.UUID) error {
	return m.delete(ctx, caller, id)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockTagLister struct {
	list func(ctx context.Context, typ domain.TagType) ([]domain.Tag, error)
}

func (m *mockTagLister) List(ctx context.Context, typ domain.TagType) ([]domain.Tag, error) {
	return m.list(ctx, typ)
}

var _ handler.TagLister = (*mockTagLister)(nil)

// ---- helpers ---------------------------------------------------------------

// services bundles the mocks a test wires into the router. Nil entries are
// replaced by empty mocks, which panic if the handler calls them.
type services struct {
	search      *mockSearcher
	profiles    *mockProfileServicer
	users       *mockUserServicer
	itineraries *mockItineraryServicer
	tags        *mockTagLister
}

// tokenVerifier maps "Bearer <subject>" to an identity with that subject.
type tokenVerifier struct{}

func (tokenVerifier) Verify(_ context.Context, token string) (domain.Identity, error) {
	return domain.Identity{Subject: token}, nil
}

var discardLog = slog.New(slog.NewTextHandler(io.Discard, nil))

// newHTTPHandler wires a Server with the given mocks behind the real router
// and authentication middleware, mirroring main.go.
func newHTTPHandler(s services) http.Handler {
	if s.search == nil {
		s.search = &mockSearcher{}
	}
	if s.profiles == nil {
		s.profiles = &mockProfileServicer{}
	}
	if s.users == nil {
		s.users = &mockUserServicer{}
	}
	if s.itineraries == nil {
		s.itineraries = &mockItineraryServicer{}
	}
	if s.tags == nil {
		s.tags = &mockTagLister{}
	}
	srv := handler.NewServer(s.search, s.profiles, s.users, s.itineraries, s.tags, discardLog)
	return handler.Handler(srv, middleware.Authenticate(tokenVerifier{}, discardLog))
}

// do sends a request as subject ("" sends no credential) and returns the recorder.
func do(t *testing.T, h http.Handler, method, target, subject string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if subject != "" {
		req.Header.Set("Authorization", "Bearer "+subject)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}
