//go:build unit

package booking_test

import (
	"testing"

	"staybook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteStay(t *testing.T) {
	t.Run("three nights at 1000 cents", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 1), date(2024, 6, 4))

		quote, err := booking.QuoteStay(stay, 1000)
		require.NoError(t, err)

		assert.Equal(t, int32(3), quote.Nights)
		assert.Equal(t, int64(3000), quote.TotalCents)
	})

	t.Run("single night", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 1), date(2024, 6, 2))

		quote, err := booking.QuoteStay(stay, 2500)
		require.NoError(t, err)

		assert.Equal(t, int32(1), quote.Nights)
		assert.Equal(t, int64(2500), quote.TotalCents)
	})

	t.Run("free landmarks quote zero", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 1), date(2024, 6, 8))

		quote, err := booking.QuoteStay(stay, 0)
		require.NoError(t, err)

		assert.Equal(t, int32(7), quote.Nights)
		assert.Equal(t, int64(0), quote.TotalCents)
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		stay := mustStay(t, date(2024, 6, 1), date(2024, 6, 4))

		_, err := booking.QuoteStay(stay, -100)
		assert.ErrorIs(t, err, booking.ErrNegativeRate)
	})
}
