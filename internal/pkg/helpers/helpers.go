package helpers

import (
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", DateLayout}

// ParseDate accepts a calendar date or an RFC3339 timestamp and returns it in UTC.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Overlaps is the half-open interval test: [aStart, aEnd) and [bStart, bEnd)
// overlap iff aStart < bEnd and bStart < aEnd. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights counts whole nights between check-in and check-out, at least one.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// LoyaltyPoints converts a spend into points: round(amount * multiplier) with a
// floor of one point for any positive amount.
func LoyaltyPoints(amount, multiplier float64) int64 {
	if amount <= 0 {
		return 0
	}
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier <= 0 {
		multiplier = 0.1
	}
	points := int64(math.Round(amount * multiplier))
	if points < 1 {
		return 1
	}
	return points
}

// DurationCalculation returns how long from now until t.
func DurationCalculation(t time.Time) time.Duration {
	d := time.Until(t)
	if d < 0 {
		return 0
	}
	return d
}

// Truthy interprets loosely typed flags coming from JSON bodies ("true", true, 1).
func Truthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return strings.EqualFold(strings.TrimSpace(val), "true")
	case float64:
		return val != 0
	case int:
		return val != 0
	default:
		return false
	}
}
