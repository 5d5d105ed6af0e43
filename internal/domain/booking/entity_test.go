//go:build unit

package booking_test

import (
	"testing"
	"time"

	"staybook/internal/domain/booking"
	"staybook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func buildBooking(t *testing.T, mutate func(*builder.BookingBuilder)) *booking.Booking {
	t.Helper()
	b := builder.NewBookingBuilder()
	if mutate != nil {
		mutate(b)
	}
	entity, err := b.BuildDomain()
	require.NoError(t, err)
	return entity
}

func TestNewBooking(t *testing.T) {
	stay, err := booking.NewStayRange(date(2024, 6, 1), date(2024, 6, 4))
	require.NoError(t, err)
	quote, err := booking.QuoteStay(stay, 1000)
	require.NoError(t, err)

	landmarkID, guestID, hostID := uuid.New(), uuid.New(), uuid.New()
	b, err := booking.NewBooking(landmarkID, guestID, hostID, stay, quote, now)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, int32(3), b.Nights())
	assert.Equal(t, int64(3000), b.Total().Cents())
	assert.Nil(t, b.SessionID())
	assert.Equal(t, now, b.CreatedAt())
	assert.Equal(t, now, b.StatusChangedAt())
}

func TestAttachSession(t *testing.T) {
	t.Run("pending booking takes a session", func(t *testing.T) {
		b := buildBooking(t, nil)

		require.NoError(t, b.AttachSession("cs_test_1", now))

		require.NotNil(t, b.SessionID())
		assert.Equal(t, "cs_test_1", *b.SessionID())
		require.NotNil(t, b.SessionStatus())
		assert.Equal(t, booking.SessionOpen, *b.SessionStatus())
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("retry replaces an expired session", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithSession("cs_test_old", booking.SessionExpired)
		})

		require.NoError(t, b.AttachSession("cs_test_new", now))

		assert.Equal(t, "cs_test_new", *b.SessionID())
		assert.Equal(t, booking.SessionOpen, *b.SessionStatus())
	})

	t.Run("paid booking refuses a new session", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithStatus(booking.StatusPaid)
		})

		assert.ErrorIs(t, b.AttachSession("cs_test_2", now), booking.ErrAlreadyPaid)
	})

	t.Run("cancelled booking refuses a session", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithStatus(booking.StatusCancelled)
		})

		assert.ErrorIs(t, b.AttachSession("cs_test_3", now), booking.ErrBookingCancelled)
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("pending becomes paid", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithSession("cs_test_1", booking.SessionOpen)
		})

		require.NoError(t, b.MarkPaid(now))

		assert.Equal(t, booking.StatusPaid, b.Status())
		assert.Equal(t, booking.SessionComplete, *b.SessionStatus())
	})

	t.Run("replayed completion is a no-op", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithSession("cs_test_1", booking.SessionOpen)
		})
		require.NoError(t, b.MarkPaid(now))
		later := now.Add(time.Hour)

		require.NoError(t, b.MarkPaid(later))

		assert.Equal(t, booking.StatusPaid, b.Status())
		assert.Equal(t, now, b.StatusChangedAt())
	})

	t.Run("confirmed booking stays confirmed on replay", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithStatus(booking.StatusConfirmed)
		})

		require.NoError(t, b.MarkPaid(now))

		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("late completion against cancelled booking is refused", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithStatus(booking.StatusCancelled)
		})

		assert.ErrorIs(t, b.MarkPaid(now), booking.ErrBookingCancelled)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestMarkSessionExpired(t *testing.T) {
	t.Run("expired session leaves booking pending", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithSession("cs_test_1", booking.SessionOpen)
		})

		require.NoError(t, b.MarkSessionExpired(now))

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.SessionExpired, *b.SessionStatus())
	})

	t.Run("expiry after payment is ignored", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithStatus(booking.StatusPaid).WithSession("cs_test_1", booking.SessionComplete)
		})

		require.NoError(t, b.MarkSessionExpired(now))

		assert.Equal(t, booking.StatusPaid, b.Status())
		assert.Equal(t, booking.SessionComplete, *b.SessionStatus())
	})

	t.Run("expiry against a cancelled booking is refused", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithStatus(booking.StatusCancelled).WithSession("cs_test_1", booking.SessionOpen)
		})

		assert.ErrorIs(t, b.MarkSessionExpired(now), booking.ErrBookingCancelled)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, booking.SessionOpen, *b.SessionStatus())
	})
}

func TestConfirm(t *testing.T) {
	hostID := uuid.New()

	t.Run("host confirms a paid booking", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusPaid)
		})

		require.NoError(t, b.Confirm(hostID, now))

		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("non-host cannot confirm", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusPaid)
		})

		assert.ErrorIs(t, b.Confirm(uuid.New(), now), booking.ErrForbiddenTransition)
		assert.Equal(t, booking.StatusPaid, b.Status())
	})

	t.Run("unpaid booking cannot be confirmed", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID)
		})

		assert.ErrorIs(t, b.Confirm(hostID, now), booking.ErrNotPaid)
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusConfirmed)
		})

		require.NoError(t, b.Confirm(hostID, now))

		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusCancelled)
		})

		assert.ErrorIs(t, b.Confirm(hostID, now), booking.ErrBookingCancelled)
	})
}

func TestCheckIn(t *testing.T) {
	hostID := uuid.New()
	checkInDay := date(2024, 6, 1)

	t.Run("host checks in on the check-in date", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusConfirmed)
		})

		require.NoError(t, b.CheckIn(hostID, checkInDay, now))

		assert.Equal(t, booking.StatusCheckedIn, b.Status())
	})

	t.Run("arrival before the check-in date is refused", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusConfirmed)
		})

		err := b.CheckIn(hostID, date(2024, 5, 31), now)

		assert.ErrorIs(t, err, booking.ErrBeforeCheckInDate)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("paid but unconfirmed booking cannot check in", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusPaid)
		})

		assert.ErrorIs(t, b.CheckIn(hostID, checkInDay, now), booking.ErrNotConfirmed)
	})

	t.Run("guest cannot check themselves in", func(t *testing.T) {
		guestID := uuid.New()
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithGuestID(guestID).WithStatus(booking.StatusConfirmed)
		})

		assert.ErrorIs(t, b.CheckIn(guestID, checkInDay, now), booking.ErrForbiddenTransition)
	})

	t.Run("checking in twice is a no-op", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithHostID(hostID).WithStatus(booking.StatusCheckedIn)
		})

		require.NoError(t, b.CheckIn(hostID, checkInDay, now))

		assert.Equal(t, booking.StatusCheckedIn, b.Status())
	})
}

func TestCancel(t *testing.T) {
	guestID := uuid.New()
	hostID := uuid.New()

	t.Run("guest cancels a pending booking", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithHostID(hostID)
		})

		require.NoError(t, b.Cancel(guestID, now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("host cancels a confirmed booking", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithHostID(hostID).WithStatus(booking.StatusConfirmed)
		})

		require.NoError(t, b.Cancel(hostID, now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("checked-in stay cannot be cancelled", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithStatus(booking.StatusCheckedIn)
		})

		assert.ErrorIs(t, b.Cancel(guestID, now), booking.ErrAlreadyCheckedIn)
		assert.Equal(t, booking.StatusCheckedIn, b.Status())
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithHostID(hostID)
		})

		assert.ErrorIs(t, b.Cancel(uuid.New(), now), booking.ErrForbiddenTransition)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithStatus(booking.StatusCancelled)
		})

		require.NoError(t, b.Cancel(guestID, now))

		assert.Equal(t, booking.StatusCancelled, b.Status())
	})
}

func TestCanDeleteBy(t *testing.T) {
	guestID := uuid.New()

	t.Run("guest deletes a never-paid pending booking", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID)
		})

		assert.NoError(t, b.CanDeleteBy(guestID))
	})

	t.Run("paid booking keeps its record", func(t *testing.T) {
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithStatus(booking.StatusPaid)
		})

		assert.ErrorIs(t, b.CanDeleteBy(guestID), booking.ErrPaymentAlreadyTaken)
	})

	t.Run("host cannot delete", func(t *testing.T) {
		hostID := uuid.New()
		b := buildBooking(t, func(bb *builder.BookingBuilder) {
			bb.WithGuestID(guestID).WithHostID(hostID)
		})

		assert.ErrorIs(t, b.CanDeleteBy(hostID), booking.ErrForbiddenTransition)
	})
}
