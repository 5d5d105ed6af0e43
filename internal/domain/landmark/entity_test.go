//go:build unit

package landmark_test

import (
	"testing"

	"staybook/internal/domain/landmark"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLandmark(t *testing.T) {
	t.Run("valid landmark", func(t *testing.T) {
		l, err := landmark.NewLandmark(uuid.New(), uuid.New(), "Seaside Cabin", 1000, 1)
		require.NoError(t, err)
		assert.Equal(t, "Seaside Cabin", l.Name())
		assert.Equal(t, int32(1), l.Capacity())
	})

	t.Run("capacity below one", func(t *testing.T) {
		_, err := landmark.NewLandmark(uuid.New(), uuid.New(), "Cabin", 1000, 0)
		assert.ErrorIs(t, err, landmark.ErrInvalidCapacity)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := landmark.NewLandmark(uuid.New(), uuid.New(), "Cabin", -1, 1)
		assert.ErrorIs(t, err, landmark.ErrNegativeRate)
	})
}

func TestHasRoom(t *testing.T) {
	t.Run("capacity one is exclusive", func(t *testing.T) {
		l, err := landmark.NewLandmark(uuid.New(), uuid.New(), "Cabin", 1000, 1)
		require.NoError(t, err)

		assert.True(t, l.HasRoom(0))
		assert.False(t, l.HasRoom(1))
	})

	t.Run("larger capacity admits concurrent stays", func(t *testing.T) {
		l, err := landmark.NewLandmark(uuid.New(), uuid.New(), "Hostel Wing", 1000, 3)
		require.NoError(t, err)

		assert.True(t, l.HasRoom(2))
		assert.False(t, l.HasRoom(3))
		assert.False(t, l.HasRoom(5))
	})
}
