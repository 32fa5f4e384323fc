package utils

import (
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return Iso8601(time.Now())
}

// Iso8601 formats t in UTC as RFC 3339
func Iso8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds converts Unix timestamp to ISO8601 format.
// Non-positive values return "" since feeds use 0 for unset.
func Iso8601FromUnixSeconds(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
