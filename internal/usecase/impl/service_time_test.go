package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceTime(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	ref := time.Date(2026, 8, 29, 14, 0, 0, 0, chicago)

	t.Run("same day time", func(t *testing.T) {
		resolved, err := parseServiceTime(ref, "08:05:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 29, 8, 5, 0, 0, chicago), resolved)
	})

	t.Run("hour past midnight rolls to next day", func(t *testing.T) {
		resolved, err := parseServiceTime(ref, "25:10:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 30, 1, 10, 0, 0, chicago), resolved)
	})

	t.Run("exactly 24 becomes midnight next day", func(t *testing.T) {
		resolved, err := parseServiceTime(ref, "24:00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, chicago), resolved)
	})

	t.Run("keeps reference location", func(t *testing.T) {
		resolved, err := parseServiceTime(ref, "14:02:00")
		require.NoError(t, err)
		assert.Equal(t, chicago, resolved.Location())
		assert.Equal(t, 2*time.Minute, resolved.Sub(ref))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := parseServiceTime(ref, "not-a-time")
		assert.Error(t, err)
	})

	t.Run("rejects out of range minutes", func(t *testing.T) {
		_, err := parseServiceTime(ref, "10:75:00")
		assert.Error(t, err)
	})
}

func TestArrivalKey(t *testing.T) {
	ref := time.Date(2026, 8, 29, 23, 50, 0, 0, time.UTC)

	assert.Equal(t, "20260829_25:10:00", arrivalKey(ref, "25:10:00"))
	assert.Equal(t, "20260829_14:02:00", arrivalKey(ref, "14:02:00"))
}
