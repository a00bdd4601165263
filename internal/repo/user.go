package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travel-mate/backend/internal/domain"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// Ensure returns the user bound to subject, inserting it with the given id
	// and email when absent. The insert-if-absent runs as one statement, so
	// concurrent first contacts for the same subject converge on one row.
	// created reports whether this call inserted the row.
	Ensure(ctx context.Context, id, subject, email string) (user domain.User, created bool, err error)

	// GetByID retrieves a user by internal id.
	// Returns domain.ErrNotFound if no user with that id exists.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetBySubject retrieves a user by external auth subject.
	// Returns domain.ErrNotFound if no user is bound to that subject.
	GetBySubject(ctx context.Context, subject string) (domain.User, error)

	// Delete removes a user and, through cascades, its profile, tag links
	// and itineraries. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Ensure upserts by subject. The no-op DO UPDATE makes RETURNING fire on
// conflict; xmax = 0 only holds for a freshly inserted tuple.
func (r *pgUserRepo) Ensure(ctx context.Context, id, subject, email string) (domain.User, bool, error) {
	const q = `
		INSERT INTO users (id, subject, email)
		VALUES (@id, @subject, @email)
		ON CONFLICT (subject) DO UPDATE SET subject = EXCLUDED.subject
		RETURNING id, subject, email, created_at, updated_at, (xmax = 0) AS inserted`

	var (
		u       domain.User
		created bool
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "subject": subject, "email": email}).
		Scan(&u.ID, &u.Subject, &u.Email, &u.CreatedAt, &u.UpdatedAt, &created)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("repo.UserRepo.Ensure: %w", err)
	}
	return u, created, nil
}

// GetByID retrieves a user by primary key.
func (r *pgUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	const q = `
		SELECT id, subject, email, created_at, updated_at
		FROM users
		WHERE id = @id`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return u, nil
}

// GetBySubject retrieves a user by external auth subject.
func (r *pgUserRepo) GetBySubject(ctx context.Context, subject string) (domain.User, error) {
	const q = `
		SELECT id, subject, email, created_at, updated_at
		FROM users
		WHERE subject = @subject`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"subject": subject}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetBySubject: %w", err)
	}
	return u, nil
}

// Delete removes a user by primary key.
func (r *pgUserRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM users WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.UserRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.UserRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanUser maps a single database row into a domain.User.
func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Subject, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}
