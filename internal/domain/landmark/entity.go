package landmark

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrNegativeRate    = errors.New("nightly rate cannot be negative")
)

// Landmark is the bookable unit, owned by exactly one host. The catalog
// service owns the full record; this is the slice the booking core needs.
type Landmark struct {
	id               uuid.UUID
	ownerID          uuid.UUID
	name             string
	nightlyRateCents int64
	capacity         int32
}

func NewLandmark(id, ownerID uuid.UUID, name string, nightlyRateCents int64, capacity int32) (*Landmark, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if nightlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	return &Landmark{
		id:               id,
		ownerID:          ownerID,
		name:             name,
		nightlyRateCents: nightlyRateCents,
		capacity:         capacity,
	}, nil
}

func (l *Landmark) ID() uuid.UUID           { return l.id }
func (l *Landmark) OwnerID() uuid.UUID      { return l.ownerID }
func (l *Landmark) Name() string            { return l.name }
func (l *Landmark) NightlyRateCents() int64 { return l.nightlyRateCents }
func (l *Landmark) Capacity() int32         { return l.capacity }

// HasRoom reports whether one more booking fits beside the given number of
// overlapping active bookings.
func (l *Landmark) HasRoom(overlapping int32) bool {
	return overlapping < l.capacity
}
