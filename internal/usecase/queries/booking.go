package queries

import (
	"context"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	LandmarkID      uuid.UUID `json:"landmark_id"`
	LandmarkName    string    `json:"landmark_name"`
	GuestID         uuid.UUID `json:"guest_id"`
	HostID          uuid.UUID `json:"host_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Nights          int32     `json:"nights"`
	TotalCents      int64     `json:"total_cents"`
	Status          string    `json:"status"`
	SessionID       *string   `json:"session_id,omitempty"`
	SessionStatus   *string   `json:"session_status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	StatusChangedAt time.Time `json:"status_changed_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	LandmarkID   uuid.UUID `json:"landmark_id"`
	LandmarkName string    `json:"landmark_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Nights       int32     `json:"nights"`
	TotalCents   int64     `json:"total_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListFilter narrows listings by status and/or a date window. The window
// matches bookings whose stay overlaps [From, To) half-open.
type ListFilter struct {
	Status *string
	From   *time.Time
	To     *time.Time
}

type BookingQueries interface {
	// GetByID enforces visibility: only the guest or the landmark owner
	// may read a booking.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	// GetByIDSystem bypasses the actor check for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, filter ListFilter) ([]*BookingListItem, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, filter ListFilter) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuest(ctx context.Context, guestID uuid.UUID, filter ListFilter) ([]*BookingListItem, error)
	FindByHost(ctx context.Context, hostID uuid.UUID, filter ListFilter) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	// Not-found rather than forbidden: existence is not leaked to outsiders.
	if view.GuestID != actor && view.HostID != actor {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, filter ListFilter) ([]*BookingListItem, error) {
	items, err := q.repo.FindByGuest(ctx, guestID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID, filter ListFilter) ([]*BookingListItem, error) {
	items, err := q.repo.FindByHost(ctx, hostID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
