//go:build unit || e2e

package builder

import (
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles bookings for tests. Defaults describe a three
// night stay priced at 1000 cents per night.
type BookingBuilder struct {
	id            uuid.UUID
	landmarkID    uuid.UUID
	guestID       uuid.UUID
	hostID        uuid.UUID
	checkIn       time.Time
	checkOut      time.Time
	rateCents     int64
	status        booking.Status
	sessionID     *string
	sessionStatus *booking.SessionStatus
	createdAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:         uuid.New(),
		landmarkID: uuid.New(),
		guestID:    uuid.New(),
		hostID:     uuid.New(),
		checkIn:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		checkOut:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		rateCents:  1000,
		status:     booking.StatusPending,
		createdAt:  time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.guestID = id
	return b
}

func (b *BookingBuilder) WithHostID(id uuid.UUID) *BookingBuilder {
	b.hostID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *BookingBuilder) WithRate(cents int64) *BookingBuilder {
	b.rateCents = cents
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) WithSession(sessionID string, status booking.SessionStatus) *BookingBuilder {
	b.sessionID = &sessionID
	b.sessionStatus = &status
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.createdAt = t
	return b
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	nights := int32(b.checkOut.Sub(b.checkIn).Hours() / 24)
	var sessStatus *string
	if b.sessionStatus != nil {
		v := b.sessionStatus.String()
		sessStatus = &v
	}
	return &queries.BookingView{
		ID:              b.id,
		LandmarkID:      b.landmarkID,
		LandmarkName:    "Seaside Cabin",
		GuestID:         b.guestID,
		HostID:          b.hostID,
		CheckIn:         b.checkIn,
		CheckOut:        b.checkOut,
		Nights:          nights,
		TotalCents:      b.rateCents * int64(nights),
		Status:          b.status.String(),
		SessionID:       b.sessionID,
		SessionStatus:   sessStatus,
		CreatedAt:       b.createdAt,
		StatusChangedAt: b.createdAt,
	}
}

func (b *BookingBuilder) BuildListItemQuery() *queries.BookingListItem {
	view := b.BuildViewQuery()
	return &queries.BookingListItem{
		ID:           view.ID,
		LandmarkID:   view.LandmarkID,
		LandmarkName: view.LandmarkName,
		CheckIn:      view.CheckIn,
		CheckOut:     view.CheckOut,
		Nights:       view.Nights,
		TotalCents:   view.TotalCents,
		Status:       view.Status,
		CreatedAt:    view.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayRange(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}
	quote, err := booking.QuoteStay(stay, b.rateCents)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(quote.TotalCents)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		b.id,
		b.landmarkID,
		b.guestID,
		b.hostID,
		stay,
		quote.Nights,
		total,
		b.status,
		b.sessionID,
		b.sessionStatus,
		b.createdAt,
		b.createdAt,
	), nil
}
