package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagType classifies a vocabulary entry.
type TagType string

const (
	TagTypeTravelStyle TagType = "travel_style"
	TagTypeInterest    TagType = "interest"
)

// Valid reports whether t is one of the known tag types.
func (t TagType) Valid() bool {
	return t == TagTypeTravelStyle || t == TagTypeInterest
}

// Tag is an entry of the controlled vocabulary that profiles link to.
// Name is unique across the whole catalog regardless of type.
type Tag struct {
	ID        uuid.UUID
	Name      string
	Type      TagType
	CreatedAt time.Time
}
