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

// nicknameConstraint is the unique constraint guarding profile nicknames.
const nicknameConstraint = "profiles_nickname_key"

// ProfileRepo defines the persistence operations for Profiles and their tag links.
type ProfileRepo interface {
	// GetByUserID retrieves the profile owned by userID, including its
	// travel styles and interests. Returns domain.ErrNotFound if absent.
	GetByUserID(ctx context.Context, userID string) (domain.Profile, error)

	// CreateIfAbsent inserts an empty profile with the given nickname unless
	// userID already has one, and returns the stored profile either way.
	// created reports whether this call inserted the row. A nickname already
	// held by another profile yields domain.ErrConflict.
	CreateIfAbsent(ctx context.Context, userID, nickname string) (profile domain.Profile, created bool, err error)

	// Update replaces every mutable field and the tag links of the profile
	// owned by userID in one transaction. Returns domain.ErrNotFound if the
	// profile does not exist, domain.ErrConflict if the nickname is held by
	// another profile, and domain.ErrValidation if a tag name is already
	// registered under the other tag type.
	Update(ctx context.Context, userID string, in domain.ProfileUpdate) (domain.Profile, error)

	// UpdateImage overwrites only the profile image reference.
	// Returns domain.ErrNotFound if the profile does not exist.
	UpdateImage(ctx context.Context, userID, imageURL string) error

	// NicknameTaken reports whether nickname is used by a profile whose owner
	// is not excludeUserID. Pass "" to check against every profile.
	NicknameTaken(ctx context.Context, nickname, excludeUserID string) (bool, error)
}

// pgProfileRepo is the Postgres implementation of ProfileRepo.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

// profileColumns selects a profile row with its tag names folded into arrays.
// ARRAY(subquery) yields '{}' rather than NULL when no tags are linked.
const profileColumns = `
	p.id, p.user_id, p.nickname, p.bio, p.profile_image_url, p.gender, p.age_range,
	ARRAY(
		SELECT t.name FROM profile_tags pt JOIN tags t ON t.id = pt.tag_id
		WHERE pt.profile_id = p.id AND t.type = 'travel_style'
		ORDER BY t.name
	) AS travel_styles,
	ARRAY(
		SELECT t.name FROM profile_tags pt JOIN tags t ON t.id = pt.tag_id
		WHERE pt.profile_id = p.id AND t.type = 'interest'
		ORDER BY t.name
	) AS interests,
	p.preferred_destinations, p.created_at, p.updated_at`

// GetByUserID retrieves a profile by its owner.
func (r *pgProfileRepo) GetByUserID(ctx context.Context, userID string) (domain.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles p WHERE p.user_id = @user_id`

	result, err := scanProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.GetByUserID: %w", err)
	}
	return result, nil
}

// CreateIfAbsent relies on the user_id unique constraint: a concurrent first
// read for the same user finds the row already present and simply reads it.
func (r *pgProfileRepo) CreateIfAbsent(ctx context.Context, userID, nickname string) (domain.Profile, bool, error) {
	const q = `
		INSERT INTO profiles (user_id, nickname)
		VALUES (@user_id, @nickname)
		ON CONFLICT (user_id) DO NOTHING`

	// The insert runs in its own (sub)transaction so a unique violation does
	// not abort an enclosing transaction.
	var inserted int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "nickname": nickname})
		inserted = tag.RowsAffected()
		return err
	})
	if err != nil {
		if isUniqueViolation(err, nicknameConstraint) {
			return domain.Profile{}, false, fmt.Errorf("repo.ProfileRepo.CreateIfAbsent: nickname %q: %w", nickname, domain.ErrConflict)
		}
		return domain.Profile{}, false, fmt.Errorf("repo.ProfileRepo.CreateIfAbsent: %w", err)
	}

	p, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("repo.ProfileRepo.CreateIfAbsent: %w", err)
	}
	return p, inserted == 1, nil
}

// Update overwrites the profile row and rebuilds its tag links.
func (r *pgProfileRepo) Update(ctx context.Context, userID string, in domain.ProfileUpdate) (domain.Profile, error) {
	const q = `
		UPDATE profiles
		SET nickname               = @nickname,
		    bio                    = @bio,
		    profile_image_url      = @profile_image_url,
		    gender                 = @gender,
		    age_range              = @age_range,
		    preferred_destinations = @preferred_destinations,
		    updated_at             = now()
		WHERE user_id = @user_id
		RETURNING id`

	args := pgx.NamedArgs{
		"user_id":                userID,
		"nickname":               in.Nickname,
		"bio":                    in.Bio,
		"profile_image_url":      in.ProfileImageURL,
		"gender":                 string(in.Gender),
		"age_range":              string(in.AgeRange),
		"preferred_destinations": nonNil(in.PreferredDestinations),
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var id pgtype.UUID
		if err := tx.QueryRow(ctx, q, args).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrNotFound
			}
			if isUniqueViolation(err, nicknameConstraint) {
				return fmt.Errorf("nickname %q: %w", in.Nickname, domain.ErrConflict)
			}
			return err
		}

		tags := NewTagRepo(tx)
		profileID := uuid.UUID(id.Bytes)
		if err := replaceTags(ctx, tags, profileID, domain.TagTypeTravelStyle, in.TravelStyles); err != nil {
			return err
		}
		return replaceTags(ctx, tags, profileID, domain.TagTypeInterest, in.Interests)
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Update: %w", err)
	}

	result, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Update: %w", err)
	}
	return result, nil
}

// replaceTags clears the profile's links of one type and links each name,
// creating missing catalog entries on the way.
func replaceTags(ctx context.Context, tags TagRepo, profileID uuid.UUID, typ domain.TagType, names []string) error {
	if err := tags.ClearProfile(ctx, profileID, typ); err != nil {
		return err
	}
	for _, name := range names {
		tag, err := tags.Upsert(ctx, name, typ)
		if err != nil {
			return err
		}
		if tag.Type != typ {
			return fmt.Errorf("%w: tag %q is registered as %s", domain.ErrValidation, name, tag.Type)
		}
		if err := tags.LinkToProfile(ctx, profileID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// UpdateImage overwrites the profile image reference.
func (r *pgProfileRepo) UpdateImage(ctx context.Context, userID, imageURL string) error {
	const q = `
		UPDATE profiles
		SET profile_image_url = @profile_image_url,
		    updated_at        = now()
		WHERE user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "profile_image_url": imageURL})
	if err != nil {
		return fmt.Errorf("repo.ProfileRepo.UpdateImage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ProfileRepo.UpdateImage: %w", domain.ErrNotFound)
	}
	return nil
}

// NicknameTaken checks for another owner of nickname.
func (r *pgProfileRepo) NicknameTaken(ctx context.Context, nickname, excludeUserID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM profiles
			WHERE nickname = @nickname
			  AND user_id <> @exclude_user_id
		)`

	var taken bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"nickname": nickname, "exclude_user_id": excludeUserID}).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("repo.ProfileRepo.NicknameTaken: %w", err)
	}
	return taken, nil
}

// scanProfile maps a single row selected with profileColumns into a domain.Profile.
func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p              domain.Profile
		id             pgtype.UUID
		gender, ageRng string
	)
	err := s.Scan(
		&id, &p.UserID, &p.Nickname, &p.Bio, &p.ProfileImageURL, &gender, &ageRng,
		&p.TravelStyles, &p.Interests, &p.PreferredDestinations, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.Gender = domain.Gender(gender)
	p.AgeRange = domain.AgeRange(ageRng)
	p.TravelStyles = nonNil(p.TravelStyles)
	p.Interests = nonNil(p.Interests)
	p.PreferredDestinations = nonNil(p.PreferredDestinations)
	return p, nil
}
