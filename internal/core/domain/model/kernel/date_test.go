package kernel_test

import (
	"testing"
	"time"

	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("creates valid calendar date", func(t *testing.T) {
		d, err := kernel.NewDate(2024, time.June, 10)

		require.NoError(t, err)
		assert.Equal(t, "2024-06-10", d.String())
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		impossible := []struct {
			year  int
			month time.Month
			day   int
		}{
			{2024, time.February, 30},
			{2023, time.February, 29},
			{2024, time.April, 31},
			{2024, time.January, 0},
		}

		for _, tc := range impossible {
			_, err := kernel.NewDate(tc.year, tc.month, tc.day)
			require.Error(t, err, "%04d-%02d-%02d should be rejected", tc.year, int(tc.month), tc.day)
		}
	})

	t.Run("accepts leap day", func(t *testing.T) {
		d, err := kernel.NewDate(2024, time.February, 29)

		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", d.String())
	})
}

func TestDateFromString(t *testing.T) {
	t.Run("parses canonical layout", func(t *testing.T) {
		d, err := kernel.DateFromString("2024-06-05")

		require.NoError(t, err)
		assert.Equal(t, "2024-06-05", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "05-06-2024", "2024/06/05", "2024-13-01", "yesterday"} {
			_, err := kernel.DateFromString(s)
			require.Error(t, err, "input %q should be rejected", s)
		}
	})
}

func TestDateOf(t *testing.T) {
	t.Run("truncates time of day", func(t *testing.T) {
		moment := time.Date(2024, time.June, 10, 23, 59, 59, 0, time.UTC)

		d := kernel.DateOf(moment)

		assert.Equal(t, "2024-06-10", d.String())
		assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), d.Time())
	})
}

func TestDate_Comparisons(t *testing.T) {
	earlier, err := kernel.DateFromString("2024-06-05")
	require.NoError(t, err)
	later, err := kernel.DateFromString("2024-06-10")
	require.NoError(t, err)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(earlier))
	assert.True(t, earlier.IsEqual(earlier))
	assert.False(t, earlier.IsEqual(later))
}

func TestDate_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var d kernel.Date

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDateIsNotConstructed, err)
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		d, err := kernel.DateFromString("2024-06-10")
		require.NoError(t, err)
		require.NoError(t, d.Validate())
	})
}
