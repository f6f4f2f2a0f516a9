package helpers_test

import (
	"testing"
	"time"

	"phoenix-booking-service/internal/pkg/helpers"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse(helpers.DateLayout, s)
	return t
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     [2]string
		expected bool
	}{
		{"same range", [2]string{"2025-01-01", "2025-01-05"}, [2]string{"2025-01-01", "2025-01-05"}, true},
		{"contained", [2]string{"2025-01-01", "2025-01-10"}, [2]string{"2025-01-03", "2025-01-04"}, true},
		{"partial", [2]string{"2025-01-01", "2025-01-05"}, [2]string{"2025-01-04", "2025-01-08"}, true},
		{"a ends where b starts", [2]string{"2025-01-01", "2025-01-05"}, [2]string{"2025-01-05", "2025-01-08"}, false},
		{"b ends where a starts", [2]string{"2025-01-05", "2025-01-08"}, [2]string{"2025-01-01", "2025-01-05"}, false},
		{"disjoint", [2]string{"2025-01-01", "2025-01-02"}, [2]string{"2025-02-01", "2025-02-02"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := helpers.Overlaps(date(tc.a[0]), date(tc.a[1]), date(tc.b[0]), date(tc.b[1]))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		got, ok := helpers.ParseDate("2025-01-01")
		assert.True(t, ok)
		assert.Equal(t, date("2025-01-01"), got)
	})

	t.Run("rfc3339 is normalised to utc", func(t *testing.T) {
		got, ok := helpers.ParseDate("2025-01-01T02:00:00+02:00")
		assert.True(t, ok)
		assert.Equal(t, date("2025-01-01"), got)
	})

	t.Run("garbage", func(t *testing.T) {
		_, ok := helpers.ParseDate("next tuesday")
		assert.False(t, ok)

		_, ok = helpers.ParseDate("")
		assert.False(t, ok)
	})
}

func TestLoyaltyPoints(t *testing.T) {
	assert.Equal(t, int64(40), helpers.LoyaltyPoints(400, 0.1))
	assert.Equal(t, int64(1), helpers.LoyaltyPoints(3, 0.1))
	assert.Equal(t, int64(0), helpers.LoyaltyPoints(0, 0.1))
	assert.Equal(t, int64(20), helpers.LoyaltyPoints(200, 0))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 4, helpers.Nights(date("2025-01-01"), date("2025-01-05")))
	assert.Equal(t, 1, helpers.Nights(date("2025-01-01"), date("2025-01-01")))
}

func TestTruthy(t *testing.T) {
	assert.True(t, helpers.Truthy(true))
	assert.True(t, helpers.Truthy("TRUE"))
	assert.True(t, helpers.Truthy(float64(1)))
	assert.False(t, helpers.Truthy("false"))
	assert.False(t, helpers.Truthy(nil))
}
