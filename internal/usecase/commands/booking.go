package commands

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/landmark"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	LandmarkID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

type BookingCommands interface {
	Create(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error)
	Confirm(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error)
	CheckIn(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error)
	Delete(ctx context.Context, actorID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// Create runs the availability check and the insert in one serializable
// transaction; two concurrent requests for overlapping ranges cannot both
// observe a free slot and both commit.
func (c *bookingCommandsImpl) Create(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*queries.BookingView, error) {
	stay, err := booking.NewStayRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	var createdID uuid.UUID
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().LandmarkByID(ctx, in.LandmarkID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrLandmarkNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		unit, err := landmark.NewLandmark(snap.ID, snap.OwnerID, snap.Name, snap.NightlyRateCents, snap.Capacity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		overlapping, err := tx.Bookings().CountActiveOverlaps(ctx, tx.DB(), unit.ID(), stay)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !unit.HasRoom(overlapping) {
			return errs.ErrUnavailable
		}

		quote, err := booking.QuoteStay(stay, unit.NightlyRateCents())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidStayRange)
		}

		b, err := booking.NewBooking(unit.ID(), guestID, unit.OwnerID(), stay, quote, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrUnavailable
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		createdID = b.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, createdID)
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, bookingID, func(b *booking.Booking) error {
		return b.Confirm(actorID, c.clock.Now())
	})
}

func (c *bookingCommandsImpl) CheckIn(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, bookingID, func(b *booking.Booking) error {
		return b.CheckIn(actorID, clock.Today(c.clock), c.clock.Now())
	})
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, actorID, bookingID uuid.UUID) (*queries.BookingView, error) {
	return c.transition(ctx, bookingID, func(b *booking.Booking) error {
		return b.Cancel(actorID, c.clock.Now())
	})
}

// Delete hard-removes a never-paid pending booking at the guest's request.
func (c *bookingCommandsImpl) Delete(ctx context.Context, actorID, bookingID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := b.CanDeleteBy(actorID); err != nil {
			return markTransitionErr(err)
		}

		if err := tx.Bookings().Delete(ctx, tx.DB(), bookingID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// transition applies one status change under the per-booking row lock, then
// re-reads the committed view.
func (c *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, apply func(b *booking.Booking) error) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := apply(b); err != nil {
			return markTransitionErr(err)
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByIDSystem(ctx, bookingID)
}

// markTransitionErr translates domain transition errors into the caller-facing
// taxonomy: authorization failures stay forbidden, state-guard failures become
// conflicts.
func markTransitionErr(err error) error {
	switch {
	case errs.IsAny(err, booking.ErrForbiddenTransition):
		return errs.Mark(err, errs.ErrForbidden)
	case errs.IsAny(err, booking.ErrAlreadyPaid):
		return errs.Mark(err, errs.ErrAlreadyPaid)
	case errs.IsAny(err, booking.ErrPaymentAlreadyTaken):
		return errs.Mark(err, errs.ErrPaymentRecorded)
	case errs.IsAny(err,
		booking.ErrAlreadyCheckedIn,
		booking.ErrBookingCancelled,
		booking.ErrNotPaid,
		booking.ErrNotConfirmed,
		booking.ErrBeforeCheckInDate):
		return errs.Mark(err, errs.ErrIllegalTransition)
	default:
		return err
	}
}
