package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserTime(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseUserTime("2026-03-01T10:30:00Z", false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("date only end of day", func(t *testing.T) {
		got, err := ParseUserTime("2026-03-01", true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC), got)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseUserTime("03/01/2026", false)
		assert.Error(t, err)
	})
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "October 5, 2026", FormatLongDate(time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "January 31, 2025", FormatLongDate(time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)))
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	clock := FixedClock{T: instant}
	assert.Equal(t, instant, clock.Now())
	assert.Equal(t, instant, clock.Now())
}
