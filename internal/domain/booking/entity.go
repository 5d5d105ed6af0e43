package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeRate        = errors.New("nightly rate cannot be negative")
	ErrForbiddenTransition = errors.New("transition not permitted")
	ErrAlreadyPaid         = errors.New("booking is already paid")
	ErrAlreadyCheckedIn    = errors.New("booking is already checked in")
	ErrBookingCancelled    = errors.New("booking is cancelled")
	ErrNotPaid             = errors.New("booking is not paid")
	ErrNotConfirmed        = errors.New("booking is not confirmed")
	ErrBeforeCheckInDate   = errors.New("check-in date not reached")
	ErrPaymentAlreadyTaken = errors.New("a successful payment exists")
)

// Booking is the durable record of one guest holding one landmark for a
// date range. All status changes go through the transition methods below;
// illegal ones return a typed error and leave the booking untouched.
type Booking struct {
	id              uuid.UUID
	landmarkID      uuid.UUID
	guestID         uuid.UUID
	hostID          uuid.UUID
	stay            StayRange
	nights          int32
	total           Money
	status          Status
	sessionID       *string
	sessionStatus   *SessionStatus
	createdAt       time.Time
	statusChangedAt time.Time
}

func NewBooking(landmarkID, guestID, hostID uuid.UUID, stay StayRange, quote Quote, now time.Time) (*Booking, error) {
	total, err := NewMoney(quote.TotalCents)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:              uuid.New(),
		landmarkID:      landmarkID,
		guestID:         guestID,
		hostID:          hostID,
		stay:            stay,
		nights:          quote.Nights,
		total:           total,
		status:          StatusPending,
		createdAt:       now,
		statusChangedAt: now,
	}, nil
}

func Reconstruct(
	id, landmarkID, guestID, hostID uuid.UUID,
	stay StayRange,
	nights int32,
	total Money,
	status Status,
	sessionID *string,
	sessionStatus *SessionStatus,
	createdAt, statusChangedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		landmarkID:      landmarkID,
		guestID:         guestID,
		hostID:          hostID,
		stay:            stay,
		nights:          nights,
		total:           total,
		status:          status,
		sessionID:       sessionID,
		sessionStatus:   sessionStatus,
		createdAt:       createdAt,
		statusChangedAt: statusChangedAt,
	}
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) LandmarkID() uuid.UUID         { return b.landmarkID }
func (b *Booking) GuestID() uuid.UUID            { return b.guestID }
func (b *Booking) HostID() uuid.UUID             { return b.hostID }
func (b *Booking) Stay() StayRange               { return b.stay }
func (b *Booking) Nights() int32                 { return b.nights }
func (b *Booking) Total() Money                  { return b.total }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) SessionID() *string            { return b.sessionID }
func (b *Booking) SessionStatus() *SessionStatus { return b.sessionStatus }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) StatusChangedAt() time.Time    { return b.statusChangedAt }

func (b *Booking) IsPaid() bool {
	switch b.status {
	case StatusPaid, StatusConfirmed, StatusCheckedIn:
		return true
	default:
		return false
	}
}

// AttachSession records a newly opened checkout session. Retrying a failed
// or abandoned payment replaces the previous reference; once paid, no new
// session may be opened.
func (b *Booking) AttachSession(sessionID string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	if b.IsPaid() {
		return ErrAlreadyPaid
	}
	st := SessionOpen
	b.sessionID = &sessionID
	b.sessionStatus = &st
	b.statusChangedAt = now
	return nil
}

// MarkPaid applies a reconciled "session complete" report. Replays against an
// already-paid booking are a no-op, not an error.
func (b *Booking) MarkPaid(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	if b.IsPaid() {
		return nil
	}
	st := SessionComplete
	b.status = StatusPaid
	b.sessionStatus = &st
	b.statusChangedAt = now
	return nil
}

// MarkSessionExpired mirrors the provider's expiry; the booking itself stays
// pending so the guest can retry.
func (b *Booking) MarkSessionExpired(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrBookingCancelled
	}
	if b.IsPaid() {
		return nil
	}
	st := SessionExpired
	b.sessionStatus = &st
	b.statusChangedAt = now
	return nil
}

// Confirm is the host accepting a paid booking.
func (b *Booking) Confirm(actorID uuid.UUID, now time.Time) error {
	if actorID != b.hostID {
		return ErrForbiddenTransition
	}
	switch b.status {
	case StatusConfirmed, StatusCheckedIn:
		return nil
	case StatusCancelled:
		return ErrBookingCancelled
	case StatusPaid:
		b.status = StatusConfirmed
		b.statusChangedAt = now
		return nil
	default:
		return ErrNotPaid
	}
}

// CheckIn marks guest arrival; only the host may do it, only on or after the
// check-in date.
func (b *Booking) CheckIn(actorID uuid.UUID, today time.Time, now time.Time) error {
	if actorID != b.hostID {
		return ErrForbiddenTransition
	}
	switch b.status {
	case StatusCheckedIn:
		return nil
	case StatusCancelled:
		return ErrBookingCancelled
	case StatusConfirmed:
		if toDate(today).Before(b.stay.CheckIn()) {
			return ErrBeforeCheckInDate
		}
		b.status = StatusCheckedIn
		b.statusChangedAt = now
		return nil
	default:
		return ErrNotConfirmed
	}
}

// Cancel may be requested by the guest or the host up to check-in.
// Cancelled is terminal; cancelling twice is a no-op.
func (b *Booking) Cancel(actorID uuid.UUID, now time.Time) error {
	if actorID != b.guestID && actorID != b.hostID {
		return ErrForbiddenTransition
	}
	switch b.status {
	case StatusCancelled:
		return nil
	case StatusCheckedIn:
		return ErrAlreadyCheckedIn
	default:
		b.status = StatusCancelled
		b.statusChangedAt = now
		return nil
	}
}

// CanDeleteBy guards hard deletion: only the guest, only while the booking is
// still pending with no successful payment. Paid bookings keep their financial
// history and are cancelled instead.
func (b *Booking) CanDeleteBy(actorID uuid.UUID) error {
	if actorID != b.guestID {
		return ErrForbiddenTransition
	}
	if b.IsPaid() || (b.sessionStatus != nil && *b.sessionStatus == SessionComplete) {
		return ErrPaymentAlreadyTaken
	}
	if b.status != StatusPending {
		return ErrForbiddenTransition
	}
	return nil
}
