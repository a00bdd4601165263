package domain

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is a travel plan owned by a user. Search reads it to match
// companions by destination text and by date overlap.
// StartDate and EndDate are calendar dates; EndDate is never before StartDate.
type Itinerary struct {
	ID        uuid.UUID
	UserID    string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
