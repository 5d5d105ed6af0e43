//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"staybook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("mark is visible to errors.Is", func(t *testing.T) {
		cause := errs.New("connection reset")
		err := errs.Mark(cause, errs.ErrDatabaseOperationFailed)

		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})

	t.Run("cause keeps its message and stays unwrappable", func(t *testing.T) {
		cause := errs.New("connection reset")
		err := errs.Mark(cause, errs.ErrDatabaseOperationFailed)

		assert.Equal(t, cause.Error(), err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrUnavailable)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUnavailable)
	})

	t.Run("remarking keeps both classifications", func(t *testing.T) {
		cause := errors.New("row locked")
		err := errs.Mark(errs.Mark(cause, errs.ErrIllegalTransition), errs.ErrForbidden)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unrelated references do not match", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), errs.ErrPaymentProvider)

		assert.NotErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestIsAny(t *testing.T) {
	err := errs.Mark(errs.New("boom"), errs.ErrIllegalTransition)

	assert.True(t, errs.IsAny(err, errs.ErrForbidden, errs.ErrIllegalTransition))
	assert.False(t, errs.IsAny(err, errs.ErrForbidden, errs.ErrUnavailable))
}
