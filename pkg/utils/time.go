package utils

import (
	"fmt"
	"time"
)

// ParseUserTime parses a time string in either RFC3339 or YYYY-MM-DD format.
// A date-only value with isEndTime set is pushed to the end of that day so
// "2025-03-20" filters inclusively.
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, timeStr); err == nil {
		return t, nil
	}

	t, err := time.Parse("2006-01-02", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}
