package readstore

import (
	"context"
	"fmt"
	"strings"

	"staybook/internal/infra"
	"staybook/internal/infra/db"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingViewSQL = `
SELECT b.id, b.landmark_id, l.name, b.guest_id, b.host_id,
	b.check_in, b.check_out, b.nights, b.total_cents,
	b.status, b.session_id, b.session_status,
	b.created_at, b.status_changed_at
FROM bookings b
JOIN landmarks l ON l.id = b.landmark_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		bID, landmarkID, guestID, hostID pgtype.UUID
		landmarkName                     string
		checkIn, checkOut                pgtype.Date
		nights                           int32
		totalCents                       int64
		status                           string
		sessionID, sessionStatus         pgtype.Text
		createdAt, statusChangedAt       pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, findBookingViewSQL, pgconv.UUIDToPgtype(id)).Scan(
		&bID, &landmarkID, &landmarkName, &guestID, &hostID,
		&checkIn, &checkOut, &nights, &totalCents,
		&status, &sessionID, &sessionStatus,
		&createdAt, &statusChangedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:              pgconv.UUIDFromPgtype(bID),
		LandmarkID:      pgconv.UUIDFromPgtype(landmarkID),
		LandmarkName:    landmarkName,
		GuestID:         pgconv.UUIDFromPgtype(guestID),
		HostID:          pgconv.UUIDFromPgtype(hostID),
		CheckIn:         pgconv.DateFromPgtype(checkIn),
		CheckOut:        pgconv.DateFromPgtype(checkOut),
		Nights:          nights,
		TotalCents:      totalCents,
		Status:          status,
		SessionID:       pgconv.StringPtrFromPgtype(sessionID),
		SessionStatus:   pgconv.StringPtrFromPgtype(sessionStatus),
		CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		StatusChangedAt: pgconv.TimeFromPgtype(statusChangedAt),
	}, nil
}

func (r *BookingReadStore) FindByGuest(ctx context.Context, guestID uuid.UUID, filter queries.ListFilter) ([]*queries.BookingListItem, error) {
	return r.list(ctx, "b.guest_id = $1", pgconv.UUIDToPgtype(guestID), filter)
}

func (r *BookingReadStore) FindByHost(ctx context.Context, hostID uuid.UUID, filter queries.ListFilter) ([]*queries.BookingListItem, error) {
	return r.list(ctx, "b.host_id = $1", pgconv.UUIDToPgtype(hostID), filter)
}

const listBookingsBaseSQL = `
SELECT b.id, b.landmark_id, l.name, b.check_in, b.check_out,
	b.nights, b.total_cents, b.status, b.created_at
FROM bookings b
JOIN landmarks l ON l.id = b.landmark_id`

func (r *BookingReadStore) list(ctx context.Context, ownerClause string, ownerArg any, filter queries.ListFilter) ([]*queries.BookingListItem, error) {
	clauses := []string{ownerClause}
	args := []any{ownerArg}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, pgconv.DateToPgtype(*filter.From))
		clauses = append(clauses, fmt.Sprintf("b.check_out > $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, pgconv.DateToPgtype(*filter.To))
		clauses = append(clauses, fmt.Sprintf("b.check_in < $%d", len(args)))
	}

	sql := listBookingsBaseSQL + "\nWHERE " + strings.Join(clauses, " AND ") + "\nORDER BY b.created_at DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var (
			id, landmarkID    pgtype.UUID
			landmarkName      string
			checkIn, checkOut pgtype.Date
			nights            int32
			totalCents        int64
			status            string
			createdAt         pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &landmarkID, &landmarkName, &checkIn, &checkOut,
			&nights, &totalCents, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &queries.BookingListItem{
			ID:           pgconv.UUIDFromPgtype(id),
			LandmarkID:   pgconv.UUIDFromPgtype(landmarkID),
			LandmarkName: landmarkName,
			CheckIn:      pgconv.DateFromPgtype(checkIn),
			CheckOut:     pgconv.DateFromPgtype(checkOut),
			Nights:       nights,
			TotalCents:   totalCents,
			Status:       status,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
