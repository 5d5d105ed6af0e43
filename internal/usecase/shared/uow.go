package shared

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for per-booking status transitions
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: conflict-detecting transaction for the
	// availability-check-then-insert critical section, retried on
	// serialization failures
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: snapshot reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Reads() CommandReads
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) error
	Update(ctx context.Context, db db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
	// FindForUpdate locks the booking row for the rest of the transaction so
	// concurrent transitions on the same booking serialize instead of racing.
	FindForUpdate(ctx context.Context, db db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindBySessionForUpdate(ctx context.Context, db db.DBTX, sessionID string) (*booking.Booking, error)
	// CountActiveOverlaps counts non-cancelled bookings of the landmark whose
	// stay overlaps the given half-open range.
	CountActiveOverlaps(ctx context.Context, db db.DBTX, landmarkID uuid.UUID, stay booking.StayRange) (int32, error)
	// ExpireStaleHolds cancels pending, unpaid bookings created before cutoff
	// and returns how many were released.
	ExpireStaleHolds(ctx context.Context, db db.DBTX, cutoff time.Time) (int64, error)
}

type CommandReads interface {
	LandmarkByID(ctx context.Context, id uuid.UUID) (*LandmarkSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}
