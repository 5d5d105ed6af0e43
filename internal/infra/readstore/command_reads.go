package readstore

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the snapshot lookups the command side needs for guards
// and pricing, bound to either the pool or an open transaction.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const landmarkSnapshotSQL = `
SELECT id, owner_id, name, nightly_rate_cents, capacity
FROM landmarks
WHERE id = $1`

func (r *CommandReads) LandmarkByID(ctx context.Context, id uuid.UUID) (*shared.LandmarkSnapshot, error) {
	var (
		lID, ownerID     pgtype.UUID
		name             string
		nightlyRateCents int64
		capacity         int32
	)
	err := r.db.QueryRow(ctx, landmarkSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&lID, &ownerID, &name, &nightlyRateCents, &capacity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("landmark not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find landmark", err)
	}

	return &shared.LandmarkSnapshot{
		ID:               pgconv.UUIDFromPgtype(lID),
		OwnerID:          pgconv.UUIDFromPgtype(ownerID),
		Name:             name,
		NightlyRateCents: nightlyRateCents,
		Capacity:         capacity,
	}, nil
}

const bookingSnapshotSQL = `
SELECT id, landmark_id, guest_id, host_id, status, session_id,
	total_cents, nights, check_in, check_out, created_at
FROM bookings
WHERE id = $1`

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		bID, landmarkID, guestID, hostID pgtype.UUID
		status                           string
		sessionID                        pgtype.Text
		totalCents                       int64
		nights                           int32
		checkIn, checkOut                pgtype.Date
		createdAt                        pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, bookingSnapshotSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bID, &landmarkID, &guestID, &hostID, &status, &sessionID,
		&totalCents, &nights, &checkIn, &checkOut, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return &shared.BookingSnapshot{
		ID:         pgconv.UUIDFromPgtype(bID),
		LandmarkID: pgconv.UUIDFromPgtype(landmarkID),
		GuestID:    pgconv.UUIDFromPgtype(guestID),
		HostID:     pgconv.UUIDFromPgtype(hostID),
		Status:     status,
		SessionID:  pgconv.StringPtrFromPgtype(sessionID),
		TotalCents: totalCents,
		Nights:     nights,
		CheckIn:    pgconv.DateFromPgtype(checkIn),
		CheckOut:   pgconv.DateFromPgtype(checkOut),
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
	}, nil
}
