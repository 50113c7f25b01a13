package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD, RFC3339 or "2006-01-02T15:04" and returns the
// calendar day at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			t, err = time.Parse("2006-01-02T15:04", s)
			if err != nil {
				return time.Time{}, fmt.Errorf("invalid date %q", s)
			}
		}
	}
	return StartOfDay(t), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights counts the nights between two calendar days.
func Nights(checkIn, checkOut time.Time) int {
	return int(StartOfDay(checkOut).Sub(StartOfDay(checkIn)).Hours() / 24)
}
