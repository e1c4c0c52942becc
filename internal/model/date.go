package model

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate returns the day as UTC midnight. Local midnight does not exist
// in zones where DST starts at 00:00.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, s)
	}
	return d, nil
}

func IsValidDate(s string) bool {
	_, err := time.ParseInLocation(DateLayout, s, time.UTC)
	return err == nil
}

func CompareDates(a, b string) int {
	ta, errA := time.ParseInLocation(DateLayout, a, time.UTC)
	tb, errB := time.ParseInLocation(DateLayout, b, time.UTC)
	switch {
	case errA != nil && errB != nil:
		return compareStrings(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return ta.Compare(tb)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
