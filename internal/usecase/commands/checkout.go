package commands

import (
	"context"
	"log/slog"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutSessionResult struct {
	SessionID     string
	URL           string
	BookingID     uuid.UUID
	BookingStatus string
}

type CheckoutCommands interface {
	// Open creates a provider-side checkout session for a pending booking and
	// persists the session reference on it.
	Open(ctx context.Context, actorID, bookingID uuid.UUID) (*CheckoutSessionResult, error)
	// Retry replaces a previous non-succeeded session with a fresh one.
	Retry(ctx context.Context, actorID, bookingID uuid.UUID) (*CheckoutSessionResult, error)
	// Reconcile pulls the provider's view of a session and advances the
	// booking accordingly. Safe to call repeatedly.
	Reconcile(ctx context.Context, sessionID string) (*CheckoutSessionResult, error)
	// HandleSessionEvent is the push-style counterpart of Reconcile, fed by
	// the provider webhook.
	HandleSessionEvent(ctx context.Context, eventType, sessionID string) error
}

type checkoutCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway CheckoutGateway
	cfg     config.BookingConfig
	clock   clock.Clock
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway CheckoutGateway, cfg config.BookingConfig, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:     uow,
		gateway: gateway,
		cfg:     cfg,
		clock:   clk,
	}
}

func (c *checkoutCommandsImpl) Open(ctx context.Context, actorID, bookingID uuid.UUID) (*CheckoutSessionResult, error) {
	return c.openSession(ctx, actorID, bookingID)
}

func (c *checkoutCommandsImpl) Retry(ctx context.Context, actorID, bookingID uuid.UUID) (*CheckoutSessionResult, error) {
	// The pending record already holds the date range, so no fresh
	// availability check runs here; the slot cannot have been given away.
	return c.openSession(ctx, actorID, bookingID)
}

func (c *checkoutCommandsImpl) openSession(ctx context.Context, actorID, bookingID uuid.UUID) (*CheckoutSessionResult, error) {
	reads := c.uow.CommandReads()

	snap, err := reads.BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if snap.GuestID != actorID {
		return nil, errs.ErrForbidden
	}
	switch booking.Status(snap.Status) {
	case booking.StatusPending:
		// proceed
	case booking.StatusCancelled:
		return nil, errs.Mark(booking.ErrBookingCancelled, errs.ErrIllegalTransition)
	default:
		return nil, errs.ErrAlreadyPaid
	}

	lm, err := reads.LandmarkByID(ctx, snap.LandmarkID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLandmarkNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Provider call first, persistence after: a failed or timed-out call
	// leaves the booking pending and retryable with nothing written.
	sess, err := c.gateway.CreateSession(ctx, CreateSessionInput{
		BookingID:    snap.ID,
		LandmarkName: lm.Name,
		Nights:       snap.Nights,
		TotalCents:   snap.TotalCents,
		Currency:     c.cfg.Currency,
		ExpiresAt:    c.clock.Now().Add(c.cfg.HoldTTL),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentProvider)
	}

	var status booking.Status
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := b.AttachSession(sess.ID, c.clock.Now()); err != nil {
			return markTransitionErr(err)
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		status = b.Status()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CheckoutSessionResult{
		SessionID:     sess.ID,
		URL:           sess.URL,
		BookingID:     bookingID,
		BookingStatus: status.String(),
	}, nil
}

func (c *checkoutCommandsImpl) Reconcile(ctx context.Context, sessionID string) (*CheckoutSessionResult, error) {
	sess, err := c.gateway.RetrieveSession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentProvider)
	}

	status, err := c.applySessionStatus(ctx, sessionID, sess.Status)
	if err != nil {
		return nil, err
	}

	return &CheckoutSessionResult{
		SessionID:     sessionID,
		URL:           sess.URL,
		BookingStatus: status,
	}, nil
}

func (c *checkoutCommandsImpl) HandleSessionEvent(ctx context.Context, eventType, sessionID string) error {
	var st booking.SessionStatus
	switch eventType {
	case "checkout.session.completed":
		st = booking.SessionComplete
	case "checkout.session.expired":
		st = booking.SessionExpired
	default:
		slog.Debug("ignoring unhandled checkout event", "type", eventType)
		return nil
	}

	_, err := c.applySessionStatus(ctx, sessionID, st)
	return err
}

// applySessionStatus maps the provider session state onto the booking's
// status machine. A session whose booking was cancelled in the meantime is
// logged and left alone; the caller sees no error.
func (c *checkoutCommandsImpl) applySessionStatus(ctx context.Context, sessionID string, st booking.SessionStatus) (string, error) {
	var status string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindBySessionForUpdate(ctx, tx.DB(), sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSessionNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		var applyErr error
		switch st {
		case booking.SessionComplete:
			applyErr = b.MarkPaid(c.clock.Now())
		case booking.SessionExpired:
			applyErr = b.MarkSessionExpired(c.clock.Now())
		case booking.SessionOpen:
			// Nothing to reconcile yet; the guest may still pay.
		}

		if applyErr != nil {
			if errs.IsAny(applyErr, booking.ErrBookingCancelled) {
				slog.Info("session resolved for cancelled booking, skipping",
					"session_id", sessionID,
					"booking_id", b.ID().String(),
					"session_status", st.String())
				status = b.Status().String()
				return nil
			}
			return markTransitionErr(applyErr)
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		status = b.Status().String()
		return nil
	})
	if err != nil {
		return "", err
	}
	return status, nil
}
