package utils

import (
	"testing"
	"time"
)

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		sec  int64
		want string
	}{
		{sec: 1700000000, want: "2023-11-14T22:13:20Z"},
		{sec: 0, want: ""},
		{sec: -10, want: ""},
	}
	for _, tt := range tests {
		if got := Iso8601FromUnixSeconds(tt.sec); got != tt.want {
			t.Errorf("Iso8601FromUnixSeconds(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestIso8601_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	got := Iso8601(time.Date(2025, 3, 1, 7, 30, 0, 0, loc))
	if got != "2025-03-01T12:30:00Z" {
		t.Errorf("unexpected %s", got)
	}
}

func TestIso8601Now_Parses(t *testing.T) {
	if _, err := time.Parse(time.RFC3339, Iso8601Now()); err != nil {
		t.Errorf("Iso8601Now not RFC 3339: %v", err)
	}
}
