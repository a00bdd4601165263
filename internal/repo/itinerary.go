package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for Itineraries.
// Single-row reads and deletes are scoped by userID to enforce ownership.
type ItineraryRepo interface {
	// Create inserts a new itinerary and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// GetByID retrieves a single itinerary owned by userID.
	// Returns domain.ErrNotFound if no such itinerary exists under that user.
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Itinerary, error)

	// ListByUser returns all itineraries of a user ordered by start_date ascending.
	ListByUser(ctx context.Context, userID string) ([]domain.Itinerary, error)

	// Update overwrites title and dates of an itinerary owned by userID and
	// returns the stored record. Returns domain.ErrNotFound if no such
	// itinerary exists under that user.
	Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// Delete removes an itinerary owned by userID.
	// Returns domain.ErrNotFound if no such itinerary exists under that user.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (user_id, title, start_date, end_date)
		VALUES (@user_id, @title, @start_date, @end_date)
		RETURNING id, user_id, title, start_date, end_date, created_at, updated_at`

	args := pgx.NamedArgs{
		"user_id":    it.UserID,
		"title":      it.Title,
		"start_date": pgtype.Date{Time: it.StartDate, Valid: true},
		"end_date":   pgtype.Date{Time: it.EndDate, Valid: true},
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an itinerary by primary key, scoped to its owner.
func (r *pgItineraryRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Itinerary, error) {
	const q = `
		SELECT id, user_id, title, start_date, end_date, created_at, updated_at
		FROM itineraries
		WHERE id = @id AND user_id = @user_id`

	result, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByUser returns a user's itineraries, earliest first.
func (r *pgItineraryRepo) ListByUser(ctx context.Context, userID string) ([]domain.Itinerary, error) {
	const q = `
		SELECT id, user_id, title, start_date, end_date, created_at, updated_at
		FROM itineraries
		WHERE user_id = @user_id
		ORDER BY start_date, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	out := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByUser: scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByUser: rows: %w", err)
	}
	return out, nil
}

// Update rewrites an itinerary in place, scoped to its owner through it.UserID.
func (r *pgItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		UPDATE itineraries
		SET title      = @title,
		    start_date = @start_date,
		    end_date   = @end_date,
		    updated_at = now()
		WHERE id = @id AND user_id = @user_id
		RETURNING id, user_id, title, start_date, end_date, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":         it.ID,
		"user_id":    it.UserID,
		"title":      it.Title,
		"start_date": pgtype.Date{Time: it.StartDate, Valid: true},
		"end_date":   pgtype.Date{Time: it.EndDate, Valid: true},
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an itinerary by primary key, scoped to its owner.
func (r *pgItineraryRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	const q = `DELETE FROM itineraries WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItinerary maps a single database row into a domain.Itinerary.
// It handles the UUID and DATE conversions.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it         domain.Itinerary
		id         pgtype.UUID
		start, end pgtype.Date
	)

	err := s.Scan(&id, &it.UserID, &it.Title, &start, &end, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.StartDate = start.Time
	it.EndDate = end.Time
	return it, nil
}
