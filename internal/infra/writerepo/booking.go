package writerepo

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, landmark_id, guest_id, host_id,
	check_in, check_out, nights, total_cents,
	status, session_id, session_status,
	created_at, status_changed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	_, err := dbtx.Exec(ctx, createBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.LandmarkID()),
		pgconv.UUIDToPgtype(b.GuestID()),
		pgconv.UUIDToPgtype(b.HostID()),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Nights(),
		b.Total().Cents(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.SessionID()),
		sessionStatusToPgtype(b.SessionStatus()),
		pgconv.TimeToPgtype(b.CreatedAt()),
		pgconv.TimeToPgtype(b.StatusChangedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const updateBookingSQL = `
UPDATE bookings
SET status = $2, session_id = $3, session_status = $4, status_changed_at = $5
WHERE id = $1`

func (r *BookingRepository) Update(ctx context.Context, dbtx db.DBTX, b *booking.Booking) error {
	tag, err := dbtx.Exec(ctx, updateBookingSQL,
		pgconv.UUIDToPgtype(b.ID()),
		b.Status().String(),
		pgconv.StringPtrToPgtype(b.SessionID()),
		sessionStatusToPgtype(b.SessionStatus()),
		pgconv.TimeToPgtype(b.StatusChangedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

func (r *BookingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteBookingSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const findBookingForUpdateSQL = `
SELECT id, landmark_id, guest_id, host_id,
	check_in, check_out, nights, total_cents,
	status, session_id, session_status,
	created_at, status_changed_at
FROM bookings
WHERE id = $1
FOR UPDATE`

func (r *BookingRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, findBookingForUpdateSQL, pgconv.UUIDToPgtype(id))
	return scanBooking(row, "failed to find booking for update")
}

const findBookingBySessionForUpdateSQL = `
SELECT id, landmark_id, guest_id, host_id,
	check_in, check_out, nights, total_cents,
	status, session_id, session_status,
	created_at, status_changed_at
FROM bookings
WHERE session_id = $1
FOR UPDATE`

func (r *BookingRepository) FindBySessionForUpdate(ctx context.Context, dbtx db.DBTX, sessionID string) (*booking.Booking, error) {
	row := dbtx.QueryRow(ctx, findBookingBySessionForUpdateSQL, sessionID)
	return scanBooking(row, "failed to find booking by session")
}

// Half-open overlap test: an existing stay conflicts iff it starts before the
// requested check-out and ends after the requested check-in.
const countActiveOverlapsSQL = `
SELECT COUNT(*)
FROM bookings
WHERE landmark_id = $1
  AND status <> 'cancelled'
  AND check_in < $3
  AND check_out > $2`

func (r *BookingRepository) CountActiveOverlaps(ctx context.Context, dbtx db.DBTX, landmarkID uuid.UUID, stay booking.StayRange) (int32, error) {
	var count int64
	err := dbtx.QueryRow(ctx, countActiveOverlapsSQL,
		pgconv.UUIDToPgtype(landmarkID),
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return int32(count), nil
}

const expireStaleHoldsSQL = `
UPDATE bookings
SET status = 'cancelled', status_changed_at = now()
WHERE status = 'pending'
  AND created_at < $1
  AND (session_status IS NULL OR session_status <> 'complete')`

func (r *BookingRepository) ExpireStaleHolds(ctx context.Context, dbtx db.DBTX, cutoff time.Time) (int64, error) {
	tag, err := dbtx.Exec(ctx, expireStaleHoldsSQL, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale holds", err)
	}
	return tag.RowsAffected(), nil
}

func sessionStatusToPgtype(s *booking.SessionStatus) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s.String(), Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner, failMsg string) (*booking.Booking, error) {
	var (
		id, landmarkID, guestID, hostID pgtype.UUID
		checkIn, checkOut               pgtype.Date
		nights                          int32
		totalCents                      int64
		status                          string
		sessionID, sessionStatus        pgtype.Text
		createdAt, statusChangedAt      pgtype.Timestamptz
	)

	err := row.Scan(
		&id, &landmarkID, &guestID, &hostID,
		&checkIn, &checkOut, &nights, &totalCents,
		&status, &sessionID, &sessionStatus,
		&createdAt, &statusChangedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(failMsg, err)
	}

	stay, err := booking.NewStayRange(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid stay range", err)
	}
	total, err := booking.NewMoney(totalCents)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid total", err)
	}
	st := booking.Status(status)
	if !st.IsValid() {
		return nil, infra.WrapRepoErr("stored booking has invalid status", errs.New(status))
	}

	var sessStatus *booking.SessionStatus
	if s := pgconv.StringPtrFromPgtype(sessionStatus); s != nil {
		v := booking.SessionStatus(*s)
		sessStatus = &v
	}

	return booking.Reconstruct(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(landmarkID),
		pgconv.UUIDFromPgtype(guestID),
		pgconv.UUIDFromPgtype(hostID),
		stay,
		nights,
		total,
		st,
		pgconv.StringPtrFromPgtype(sessionID),
		sessStatus,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(statusChangedAt),
	), nil
}
