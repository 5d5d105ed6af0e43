package commands

import (
	"context"
	"time"

	"staybook/internal/domain/booking"

	"github.com/google/uuid"
)

// CheckoutGateway is the seam to the hosted payment provider. Implementations
// must honor ctx deadlines; a timed-out call returns an error and the booking
// is left untouched.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
}

type CreateSessionInput struct {
	BookingID    uuid.UUID
	LandmarkName string
	Nights       int32
	TotalCents   int64
	Currency     string
	// ExpiresAt aligns the provider-side session lifetime with the booking
	// hold, so an abandoned session expires together with the hold it backs.
	ExpiresAt time.Time
}

type CheckoutSession struct {
	ID     string
	URL    string
	Status booking.SessionStatus
}
