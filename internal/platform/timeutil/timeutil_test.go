package timeutil_test

import (
	"testing"
	"time"

	"timecli/internal/platform/timeutil"
)

func TestParseClockTime(t *testing.T) {
	t.Parallel()
	ref := time.Date(2026, 3, 14, 18, 45, 12, 0, time.UTC)

	cases := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{in: "09:30", hour: 9, minute: 30},
		{in: "23:05", hour: 23, minute: 5},
		{in: "9:05 AM", hour: 9, minute: 5},
		{in: "12:00 AM", hour: 0, minute: 0},
		{in: "12:30 PM", hour: 12, minute: 30},
		{in: "1:15 pm", hour: 13, minute: 15},
		{in: "24:00", wantErr: true},
		{in: "13:00 PM", wantErr: true},
		{in: "0:15 AM", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "half past nine", wantErr: true},
	}
	for _, tc := range cases {
		got, err := timeutil.ParseClockTime(tc.in, ref)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClockTime(%q) should fail, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClockTime(%q): %v", tc.in, err)
		}
		if got.Hour() != tc.hour || got.Minute() != tc.minute {
			t.Fatalf("ParseClockTime(%q) = %02d:%02d, want %02d:%02d", tc.in, got.Hour(), got.Minute(), tc.hour, tc.minute)
		}
		if got.Year() != 2026 || got.Month() != 3 || got.Day() != 14 {
			t.Fatalf("ParseClockTime(%q) lost the reference date: %v", tc.in, got)
		}
		if got.Second() != 0 {
			t.Fatalf("ParseClockTime(%q) should zero seconds, got %v", tc.in, got)
		}
	}
}

func TestParseAdjustment(t *testing.T) {
	t.Parallel()
	if adj := timeutil.ParseAdjustment("+15m"); adj == nil || adj.Amount != 15*time.Minute {
		t.Fatalf("+15m parsed as %+v", adj)
	}
	if adj := timeutil.ParseAdjustment("-2h"); adj == nil || adj.Amount != -2*time.Hour {
		t.Fatalf("-2h parsed as %+v", adj)
	}
	// Non-adjustments fall through to absolute-time parsing, so nil, not error.
	for _, in := range []string{"09:30", "15m", "+m", "+1d", ""} {
		if adj := timeutil.ParseAdjustment(in); adj != nil {
			t.Fatalf("ParseAdjustment(%q) = %+v, want nil", in, adj)
		}
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1h", 3600, true},
		{"90m", 5400, true},
		{"45s", 45, true},
		{"1h 30m", 5400, true},
		{"2h 5m 10s", 7510, true},
		{"1:30", 5400, true},
		{"120:05", 432300, true},
		{"0s", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1h30x", 0, false},
		{"1:75", 0, false},
		{"1:2:3", 0, false},
	}
	for _, tc := range cases {
		got, ok := timeutil.ParseDuration(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseDuration(%q) = (%d, %t), want (%d, %t)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{5400, "1h 30m"},
		{3605, "1h 0m 5s"},
		{7510, "2h 5m 10s"},
		{-1, "N/A"},
	}
	for _, tc := range cases {
		if got := timeutil.FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDurationFormatRoundTrip(t *testing.T) {
	t.Parallel()
	for _, seconds := range []int64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 90000} {
		formatted := timeutil.FormatDuration(seconds)
		parsed, ok := timeutil.ParseDuration(formatted)
		if !ok {
			t.Fatalf("FormatDuration(%d) = %q did not parse back", seconds, formatted)
		}
		if timeutil.FormatDuration(parsed) != formatted {
			t.Fatalf("round trip for %d: %q -> %d -> %q", seconds, formatted, parsed, timeutil.FormatDuration(parsed))
		}
	}
}

func TestResolveDateKeyword(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 14, 18, 45, 0, 0, time.UTC)

	today, err := timeutil.ResolveDateKeyword("today", now)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if got := today.Format(timeutil.DateLayout); got != "2026-03-14" {
		t.Fatalf("today = %s", got)
	}
	yesterday, _ := timeutil.ResolveDateKeyword("yesterday", now)
	if got := yesterday.Format(timeutil.DateLayout); got != "2026-03-13" {
		t.Fatalf("yesterday = %s", got)
	}
	literal, err := timeutil.ResolveDateKeyword("2025-12-31", now)
	if err != nil {
		t.Fatalf("literal date: %v", err)
	}
	if got := literal.Format(timeutil.DateLayout); got != "2025-12-31" {
		t.Fatalf("literal = %s", got)
	}
	if _, err := timeutil.ResolveDateKeyword("31/12/2025", now); err == nil {
		t.Fatalf("slash date should fail")
	}
}

func TestLocalDayBounds(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+5", 5*3600)
	day := time.Date(2026, 3, 14, 13, 0, 0, 0, loc)
	start, end := timeutil.LocalDayBounds(day)
	if start.Hour() != 0 || start.Day() != 14 {
		t.Fatalf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("span = %v", end.Sub(start))
	}
	if start.Location() != loc {
		t.Fatalf("bounds must stay in the day's location")
	}
}
