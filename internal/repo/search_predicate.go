package repo

import (
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// searchFrom is the required join every search runs over: a user without a
// profile can never be a candidate.
const searchFrom = `users u JOIN profiles p ON p.user_id = u.id`

// predicate accumulates AND-ed SQL clauses and the named arguments they bind.
type predicate struct {
	clauses []string
	args    pgx.NamedArgs
}

func newPredicate() *predicate {
	return &predicate{args: pgx.NamedArgs{}}
}

// and appends clause, binding the given name/value pairs.
func (p *predicate) and(clause string, kv ...any) {
	p.clauses = append(p.clauses, clause)
	for i := 0; i+1 < len(kv); i += 2 {
		p.args[kv[i].(string)] = kv[i+1]
	}
}

// sql joins the clauses with AND. An empty predicate is TRUE.
func (p *predicate) sql() string {
	if len(p.clauses) == 0 {
		return "TRUE"
	}
	return strings.Join(p.clauses, "\n\t  AND ")
}

// buildSearchPredicate composes the WHERE clause for a companion search.
//
// Every criterion is an independent AND clause. Inside travelStyles and
// interests the listed names are OR-ed: one matching tag is enough. An empty
// list adds no clause at all. Itinerary criteria share a single EXISTS so the
// same itinerary has to satisfy title and dates together.
func buildSearchPredicate(f domain.SearchFilter) (string, pgx.NamedArgs) {
	p := newPredicate()

	p.and(`u.subject <> @requester`, "requester", f.RequesterSubject)

	if f.Keyword != "" {
		p.and(`(p.nickname ILIKE @keyword OR p.bio ILIKE @keyword)`, "keyword", containsPattern(f.Keyword))
	}
	if f.PreferredLocation != "" {
		p.and(`EXISTS (
		SELECT 1 FROM unnest(p.preferred_destinations) AS d(name)
		WHERE d.name ILIKE @preferred_location
	  )`, "preferred_location", containsPattern(f.PreferredLocation))
	}
	if f.Gender != domain.GenderUnset {
		p.and(`p.gender = @gender`, "gender", string(f.Gender))
	}
	if f.AgeRange != domain.AgeRangeUnset {
		p.and(`p.age_range = @age_range`, "age_range", string(f.AgeRange))
	}
	if len(f.TravelStyles) > 0 {
		p.and(tagClause(domain.TagTypeTravelStyle, "travel_styles"), "travel_styles", f.TravelStyles)
	}
	if len(f.Interests) > 0 {
		p.and(tagClause(domain.TagTypeInterest, "interests"), "interests", f.Interests)
	}
	if f.HasItineraryFilter() {
		p.and(itineraryClause(f, p.args))
	}

	return p.sql(), p.args
}

// tagClause matches profiles linked to at least one tag of typ whose name is
// in the array bound to param.
func tagClause(typ domain.TagType, param string) string {
	return `EXISTS (
		SELECT 1 FROM profile_tags pt JOIN tags t ON t.id = pt.tag_id
		WHERE pt.profile_id = p.id
		  AND t.type = '` + string(typ) + `'
		  AND t.name = ANY(@` + param + `)
	  )`
}

// itineraryClause builds the EXISTS over the candidate's itineraries and binds
// its arguments into args. With both bounds the intervals must intersect;
// with one bound the comparison is open-ended on that side.
func itineraryClause(f domain.SearchFilter, args pgx.NamedArgs) string {
	sub := []string{`i.user_id = u.id`}
	if f.Destination != "" {
		sub = append(sub, `i.title ILIKE @destination`)
		args["destination"] = containsPattern(f.Destination)
	}
	if f.EndDate != nil && !f.EndDate.IsZero() {
		sub = append(sub, `i.start_date <= @end_date`)
		args["end_date"] = pgtype.Date{Time: *f.EndDate, Valid: true}
	}
	if f.StartDate != nil && !f.StartDate.IsZero() {
		sub = append(sub, `i.end_date >= @start_date`)
		args["start_date"] = pgtype.Date{Time: *f.StartDate, Valid: true}
	}
	return `EXISTS (
		SELECT 1 FROM itineraries i
		WHERE ` + strings.Join(sub, "\n\t\t  AND ") + `
	  )`
}

// likeEscaper escapes LIKE metacharacters so user input only ever matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps s for a case-insensitive substring match.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
