package shared

import (
	"time"

	"github.com/google/uuid"
)

type LandmarkSnapshot struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Name             string
	NightlyRateCents int64
	Capacity         int32
}

// Minimal snapshot for command-side guards; full views live on the query side.
type BookingSnapshot struct {
	ID         uuid.UUID
	LandmarkID uuid.UUID
	GuestID    uuid.UUID
	HostID     uuid.UUID
	Status     string
	SessionID  *string
	TotalCents int64
	Nights     int32
	CheckIn    time.Time
	CheckOut   time.Time
	CreatedAt  time.Time
}
