package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// SearchRepo runs companion searches against users, profiles, tags and itineraries.
type SearchRepo interface {
	// Search returns one page of candidates matching f and the total number of
	// matches. The total does not depend on f.Page.
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Candidate, int64, error)
}

// pgSearchRepo is the Postgres implementation of SearchRepo.
type pgSearchRepo struct {
	db db
}

// NewSearchRepo constructs a SearchRepo backed by the provided db connection.
func NewSearchRepo(db db) SearchRepo {
	return &pgSearchRepo{db: db}
}

// Search counts and pages with the exact same predicate. Candidates are
// ordered newest profile first, ties broken by user id, so pages are stable.
func (r *pgSearchRepo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Candidate, int64, error) {
	where, args := buildSearchPredicate(f)

	countQ := `SELECT count(*) FROM ` + searchFrom + ` WHERE ` + where

	var total int64
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.SearchRepo.Search: count: %w", err)
	}

	pageQ := `
		SELECT u.id, ` + profileColumns + `
		FROM ` + searchFrom + `
		WHERE ` + where + `
		ORDER BY p.created_at DESC, u.id
		LIMIT @limit OFFSET @offset`

	pageArgs := pgx.NamedArgs{"limit": f.Page.Limit, "offset": f.Page.Offset}
	for k, v := range args {
		pageArgs[k] = v
	}

	rows, err := r.db.Query(ctx, pageQ, pageArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.SearchRepo.Search: %w", err)
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.SearchRepo.Search: scan: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.SearchRepo.Search: rows: %w", err)
	}
	return candidates, total, nil
}

// scanCandidate reads a user id followed by profileColumns and keeps only the
// public projection.
func scanCandidate(s scanner) (domain.Candidate, error) {
	var userID string
	p, err := scanProfile(prefixScanner{s: s, first: &userID})
	if err != nil {
		return domain.Candidate{}, err
	}
	return domain.Candidate{
		UserID:                userID,
		Nickname:              p.Nickname,
		Bio:                   p.Bio,
		ProfileImageURL:       p.ProfileImageURL,
		Gender:                p.Gender,
		AgeRange:              p.AgeRange,
		TravelStyles:          p.TravelStyles,
		Interests:             p.Interests,
		PreferredDestinations: p.PreferredDestinations,
	}, nil
}

// prefixScanner scans one leading column into first before the destinations
// the wrapped scan helper supplies.
type prefixScanner struct {
	s     scanner
	first any
}

func (ps prefixScanner) Scan(dest ...any) error {
	return ps.s.Scan(append([]any{ps.first}, dest...)...)
}
