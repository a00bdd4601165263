package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
	"github.com/pkordes/travel-mate/backend/testutil"
)

// repos bundles every repo backed by the same test transaction.
type repos struct {
	users       repo.UserRepo
	profiles    repo.ProfileRepo
	tags        repo.TagRepo
	itineraries repo.ItineraryRepo
	search      repo.SearchRepo
}

// newTestRepos returns all repos backed by one rolled-back test transaction.
func newTestRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)

	return repos{
		users:       repo.NewUserRepo(tx),
		profiles:    repo.NewProfileRepo(tx),
		tags:        repo.NewTagRepo(tx),
		itineraries: repo.NewItineraryRepo(tx),
		search:      repo.NewSearchRepo(tx),
	}
}

// mustCreateUser inserts a user bound to subject with a random id and nickname
// prefix, and fails the test on error.
func mustCreateUser(t *testing.T, r repos, subject string) domain.User {
	t.Helper()
	u, _, err := r.users.Ensure(context.Background(), "id-"+uuid.NewString()[:12], subject, "")
	require.NoError(t, err, "ensure user %s", subject)
	return u
}

// mustCreateProfile creates a user and a profile carrying the given state.
func mustCreateProfile(t *testing.T, r repos, subject string, in domain.ProfileUpdate) domain.User {
	t.Helper()
	ctx := context.Background()

	u := mustCreateUser(t, r, subject)
	if in.Nickname == "" {
		in.Nickname = "nick_" + uuid.NewString()[:8]
	}
	_, _, err := r.profiles.CreateIfAbsent(ctx, u.ID, in.Nickname)
	require.NoError(t, err, "create profile for %s", subject)
	_, err = r.profiles.Update(ctx, u.ID, in)
	require.NoError(t, err, "update profile for %s", subject)
	return u
}

// mustCreateItinerary inserts an itinerary for userID spanning the given days of July 2025.
func mustCreateItinerary(t *testing.T, r repos, userID, title string, fromDay, toDay int) domain.Itinerary {
	t.Helper()
	it, err := r.itineraries.Create(context.Background(), domain.Itinerary{
		UserID:    userID,
		Title:     title,
		StartDate: july(fromDay),
		EndDate:   july(toDay),
	})
	require.NoError(t, err, "create itinerary")
	return it
}

func july(d int) time.Time {
	return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)
}

func julyPtr(d int) *time.Time {
	t := july(d)
	return &t
}

// overlaps is the in-memory statement of the itinerary date rule search
// implements in SQL: the itinerary shares at least one day with [from, to],
// and a nil bound is open-ended.
func overlaps(it domain.Itinerary, from, to *time.Time) bool {
	if to != nil && it.StartDate.After(*to) {
		return false
	}
	if from != nil && it.EndDate.Before(*from) {
		return false
	}
	return true
}
