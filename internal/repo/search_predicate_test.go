package repo

import (
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

func TestBuildSearchPredicate_BaseOnly(t *testing.T) {
	where, args := buildSearchPredicate(domain.SearchFilter{RequesterSubject: "u1"})

	assert.Equal(t, "u.subject <> @requester", where)
	assert.Equal(t, "u1", args["requester"])
	assert.Len(t, args, 1)
}

func TestBuildSearchPredicate_EmptyTagSetsAddNothing(t *testing.T) {
	base, _ := buildSearchPredicate(domain.SearchFilter{RequesterSubject: "u1"})
	withEmpty, args := buildSearchPredicate(domain.SearchFilter{
		RequesterSubject: "u1",
		TravelStyles:     []string{},
		Interests:        nil,
	})

	assert.Equal(t, base, withEmpty)
	assert.NotContains(t, args, "travel_styles")
	assert.NotContains(t, args, "interests")
}

func TestBuildSearchPredicate_TagSetsAreOneClauseEach(t *testing.T) {
	where, args := buildSearchPredicate(domain.SearchFilter{
		RequesterSubject: "u1",
		TravelStyles:     []string{"hiking", "beach"},
		Interests:        []string{"food"},
	})

	assert.Equal(t, []string{"hiking", "beach"}, args["travel_styles"])
	assert.Equal(t, []string{"food"}, args["interests"])
	assert.Equal(t, 1, strings.Count(where, "ANY(@travel_styles)"), "one OR-group for the whole set")
	assert.Equal(t, 1, strings.Count(where, "ANY(@interests)"))
	assert.Contains(t, where, "t.type = 'travel_style'")
	assert.Contains(t, where, "t.type = 'interest'")
}

func TestBuildSearchPredicate_ScalarFilters(t *testing.T) {
	where, args := buildSearchPredicate(domain.SearchFilter{
		RequesterSubject:  "u1",
		Keyword:           "sea",
		PreferredLocation: "Jeju",
		Gender:            domain.GenderFemale,
		AgeRange:          domain.AgeRange30s,
	})

	assert.Contains(t, where, "(p.nickname ILIKE @keyword OR p.bio ILIKE @keyword)")
	assert.Contains(t, where, "unnest(p.preferred_destinations)")
	assert.Contains(t, where, "p.gender = @gender")
	assert.Contains(t, where, "p.age_range = @age_range")
	assert.Equal(t, "%sea%", args["keyword"])
	assert.Equal(t, "%Jeju%", args["preferred_location"])
	assert.Equal(t, "여성", args["gender"])
	assert.Equal(t, "30대", args["age_range"])
	assert.NotContains(t, where, "itineraries", "no itinerary join without itinerary filters")
}

func TestBuildSearchPredicate_ItineraryOverlap(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	where, args := buildSearchPredicate(domain.SearchFilter{
		RequesterSubject: "u1",
		Destination:      "Busan",
		StartDate:        &start,
		EndDate:          &end,
	})

	assert.Equal(t, 1, strings.Count(where, "FROM itineraries i"), "one EXISTS for all itinerary criteria")
	assert.Contains(t, where, "i.title ILIKE @destination")
	assert.Contains(t, where, "i.start_date <= @end_date")
	assert.Contains(t, where, "i.end_date >= @start_date")
	assert.Equal(t, "%Busan%", args["destination"])
	assert.Equal(t, pgtype.Date{Time: start, Valid: true}, args["start_date"])
	assert.Equal(t, pgtype.Date{Time: end, Valid: true}, args["end_date"])
}

func TestBuildSearchPredicate_ItinerarySingleBound(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	where, args := buildSearchPredicate(domain.SearchFilter{RequesterSubject: "u1", StartDate: &start})

	require.Contains(t, where, "i.end_date >= @start_date")
	assert.NotContains(t, where, "@end_date")
	assert.NotContains(t, args, "end_date")
}

func TestBuildSearchPredicate_ZeroBoundsAddNothing(t *testing.T) {
	var zero time.Time
	base, _ := buildSearchPredicate(domain.SearchFilter{RequesterSubject: "u1"})

	where, args := buildSearchPredicate(domain.SearchFilter{RequesterSubject: "u1", StartDate: &zero, EndDate: &zero})

	assert.Equal(t, base, where)
	assert.NotContains(t, where, "itineraries")
	assert.NotContains(t, args, "start_date")
	assert.NotContains(t, args, "end_date")
}

func TestBuildSearchPredicate_ZeroStartKeepsEnd(t *testing.T) {
	var zero time.Time
	end := time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC)

	where, args := buildSearchPredicate(domain.SearchFilter{RequesterSubject: "u1", StartDate: &zero, EndDate: &end})

	assert.Contains(t, where, "i.start_date <= @end_date")
	assert.NotContains(t, where, "@start_date")
	assert.NotContains(t, args, "start_date")
}

func TestContainsPattern_EscapesMetacharacters(t *testing.T) {
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}
