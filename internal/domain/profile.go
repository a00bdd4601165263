package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the profile's self-declared gender. The empty value means unset.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "남성"
	GenderFemale Gender = "여성"
)

// Valid reports whether g is unset or one of the known values.
func (g Gender) Valid() bool {
	switch g {
	case GenderUnset, GenderMale, GenderFemale:
		return true
	}
	return false
}

// AgeRange is the profile's age bracket. The empty value means unset.
type AgeRange string

const (
	AgeRangeUnset AgeRange = ""
	AgeRange10s   AgeRange = "10대"
	AgeRange20s   AgeRange = "20대"
	AgeRange30s   AgeRange = "30대"
	AgeRange40s   AgeRange = "40대"
	AgeRange50s   AgeRange = "50대 이상"
)

// Valid reports whether a is unset or one of the known brackets.
func (a AgeRange) Valid() bool {
	switch a {
	case AgeRangeUnset, AgeRange10s, AgeRange20s, AgeRange30s, AgeRange40s, AgeRange50s:
		return true
	}
	return false
}

// IsAnyFilter reports whether v is one of the sentinel values that disable a
// scalar search filter: empty, "Any" or "무관".
func IsAnyFilter(v string) bool {
	return v == "" || v == "Any" || v == "무관"
}

// Profile holds the searchable attributes of a user. It is one-to-one with User.
//
// TravelStyles and Interests are the names of the catalog tags linked to the
// profile; PreferredDestinations is a free-form set. All three are treated as
// sets: order carries no meaning.
type Profile struct {
	ID                    uuid.UUID
	UserID                string
	Nickname              string
	Bio                   string
	ProfileImageURL       string
	Gender                Gender
	AgeRange              AgeRange
	TravelStyles          []string
	Interests             []string
	PreferredDestinations []string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ProfileUpdate carries the full replacement state of a profile's mutable fields.
// Fields the client omitted arrive as zero values and overwrite the stored ones.
type ProfileUpdate struct {
	Nickname              string
	Bio                   string
	ProfileImageURL       string
	Gender                Gender
	AgeRange              AgeRange
	TravelStyles          []string
	Interests             []string
	PreferredDestinations []string
}
