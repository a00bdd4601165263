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

// TagRepo defines the persistence operations for the tag catalog and the
// profile_tags join table.
type TagRepo interface {
	// Upsert inserts a tag by name, or returns the existing tag if the name
	// already exists. The stored type of an existing tag is never changed,
	// so callers must compare the returned Type with the one they asked for.
	Upsert(ctx context.Context, name string, typ domain.TagType) (domain.Tag, error)

	// List returns catalog tags ordered by name. An empty typ returns all types.
	List(ctx context.Context, typ domain.TagType) ([]domain.Tag, error)

	// LinkToProfile links a tag to a profile. Idempotent: no error if already linked.
	LinkToProfile(ctx context.Context, profileID, tagID uuid.UUID) error

	// ClearProfile removes every tag link of the given type from a profile.
	ClearProfile(ctx context.Context, profileID uuid.UUID, typ domain.TagType) error

	// ListByProfile returns all tags linked to a profile, ordered by name.
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Tag, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

// Upsert inserts a tag or returns the existing row on name conflict.
// The DO UPDATE SET trick forces the RETURNING clause to fire even when
// the conflict handler skips the insert.
func (r *pgTagRepo) Upsert(ctx context.Context, name string, typ domain.TagType) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (name, type)
		VALUES (@name, @type)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, type, created_at`

	result, err := scanTag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name, "type": string(typ)}))
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Upsert: %w", err)
	}
	return result, nil
}

// List returns catalog tags ordered by name, optionally restricted to one type.
func (r *pgTagRepo) List(ctx context.Context, typ domain.TagType) ([]domain.Tag, error) {
	const q = `
		SELECT id, name, type, created_at
		FROM tags
		WHERE @type::text = '' OR type = @type::text
		ORDER BY name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"type": string(typ)})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	defer rows.Close()

	tags, err := collectTags(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.List: %w", err)
	}
	return tags, nil
}

// LinkToProfile links a tag to a profile. Idempotent via ON CONFLICT DO NOTHING.
func (r *pgTagRepo) LinkToProfile(ctx context.Context, profileID, tagID uuid.UUID) error {
	const q = `
		INSERT INTO profile_tags (profile_id, tag_id)
		VALUES (@profile_id, @tag_id)
		ON CONFLICT (profile_id, tag_id) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"profile_id": profileID, "tag_id": tagID})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.LinkToProfile: %w", err)
	}
	return nil
}

// ClearProfile unlinks all tags of one type from a profile.
func (r *pgTagRepo) ClearProfile(ctx context.Context, profileID uuid.UUID, typ domain.TagType) error {
	const q = `
		DELETE FROM profile_tags pt
		USING tags t
		WHERE pt.tag_id = t.id
		  AND pt.profile_id = @profile_id
		  AND t.type = @type`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"profile_id": profileID, "type": string(typ)})
	if err != nil {
		return fmt.Errorf("repo.TagRepo.ClearProfile: %w", err)
	}
	return nil
}

// ListByProfile returns all tags linked to a profile, ordered by name.
func (r *pgTagRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]domain.Tag, error) {
	const q = `
		SELECT t.id, t.name, t.type, t.created_at
		FROM tags t
		JOIN profile_tags pt ON pt.tag_id = t.id
		WHERE pt.profile_id = @profile_id
		ORDER BY t.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"profile_id": profileID})
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByProfile: %w", err)
	}
	defer rows.Close()

	tags, err := collectTags(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TagRepo.ListByProfile: %w", err)
	}
	return tags, nil
}

// collectTags drains rows into a non-nil slice.
func collectTags(rows pgx.Rows) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return tags, nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var (
		t   domain.Tag
		id  pgtype.UUID
		typ string
	)
	err := s.Scan(&id, &t.Name, &typ, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	t.Type = domain.TagType(typ)
	return t, nil
}
