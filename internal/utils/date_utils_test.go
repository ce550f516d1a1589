package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateParam(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	t.Run("Empty", func(t *testing.T) {
		d, dateOnly, err := ParseDateParam("", loc)
		require.NoError(t, err)
		assert.True(t, d.IsZero())
		assert.False(t, dateOnly)
	})

	t.Run("RFC3339", func(t *testing.T) {
		d, dateOnly, err := ParseDateParam("2024-03-10T12:00:00Z", loc)
		require.NoError(t, err)
		assert.False(t, dateOnly)
		assert.True(t, d.Equal(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("LocalDateTime", func(t *testing.T) {
		d, dateOnly, err := ParseDateParam("2024-03-10T12:00:00", loc)
		require.NoError(t, err)
		assert.False(t, dateOnly)
		assert.True(t, d.Equal(time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)))
	})

	t.Run("DateOnly", func(t *testing.T) {
		d, dateOnly, err := ParseDateParam("2024-03-10", loc)
		require.NoError(t, err)
		assert.True(t, dateOnly)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), d)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, _, err := ParseDateParam("10/03/2024", loc)
		assert.Error(t, err)
	})
}

func TestEndOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	end := EndOfDay(time.Date(2024, 3, 10, 0, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999999999, loc), end)
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)

	assert.True(t, SameDay(time.Date(2024, 3, 10, 0, 0, 0, 0, loc), now, loc))
	assert.True(t, SameDay(time.Date(2024, 3, 11, 2, 59, 59, 0, time.UTC), now, loc))
	assert.False(t, SameDay(time.Date(2024, 3, 11, 3, 0, 0, 0, time.UTC), now, loc))
}

func TestGetLocation(t *testing.T) {
	assert.NotNil(t, GetBrasilLocation())
	assert.NotNil(t, GetLocation("Not/AZone"))
}

func TestClocks(t *testing.T) {
	instant := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, instant, FixedClock{Instant: instant}.Now())

	loc := time.FixedZone("BRT", -3*60*60)
	assert.Equal(t, loc, NewSystemClock(loc).Now().Location())
}
