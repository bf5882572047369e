// Package timeutil holds the clock-time, duration, and calendar-day helpers
// shared by the session ledger and the reporting engine. Everything here is a
// pure function; "now" is always passed in by the caller.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	apperrors "timecli/internal/platform/errors"
)

// DateLayout is the local calendar date form used everywhere a "day" is
// displayed, filtered on, or bucketed.
const DateLayout = "2006-01-02"

var (
	clockRe      = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(?i:(AM|PM))?$`)
	adjustmentRe = regexp.MustCompile(`^([+-])(\d+)([mh])$`)
	hmsRe        = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?\s*(?:(\d+)\s*s)?$`)
	colonRe      = regexp.MustCompile(`^(\d{1,3}):(\d{2})$`)
)

// ParseClockTime reads "HH:MM" (24-hour) or "HH:MM AM/PM" and combines it
// with the date portion of ref, in ref's location. Seconds are zeroed.
func ParseClockTime(text string, ref time.Time) (time.Time, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a clock time (want HH:MM or HH:MM AM/PM)", apperrors.ErrInvalidInput, text)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return time.Time{}, fmt.Errorf("%w: minute %d out of range in %q", apperrors.ErrInvalidInput, minute, text)
	}
	if meridiem := strings.ToUpper(m[3]); meridiem != "" {
		if hour < 1 || hour > 12 {
			return time.Time{}, fmt.Errorf("%w: hour %d out of range for 12-hour time %q", apperrors.ErrInvalidInput, hour, text)
		}
		if meridiem == "PM" && hour != 12 {
			hour += 12
		} else if meridiem == "AM" && hour == 12 {
			hour = 0
		}
	} else if hour > 23 {
		return time.Time{}, fmt.Errorf("%w: hour %d out of range in %q", apperrors.ErrInvalidInput, hour, text)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location()), nil
}

// Adjustment is a signed shift of a session endpoint, e.g. "+15m" or "-2h".
type Adjustment struct {
	Amount time.Duration
}

// ParseAdjustment matches [+-]N[mh]. It returns nil (not an error) when the
// text is not an adjustment at all, so callers can fall back to absolute
// clock-time parsing.
func ParseAdjustment(text string) *Adjustment {
	m := adjustmentRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	unit := time.Minute
	if m[3] == "h" {
		unit = time.Hour
	}
	amount := time.Duration(n) * unit
	if m[1] == "-" {
		amount = -amount
	}
	return &Adjustment{Amount: amount}
}

// ParseDuration reads "2h 30m 10s" style strings (any subset of units, h
// before m before s) or the colon form "H:MM", returning whole seconds.
// It returns ok=false for empty input, trailing garbage, or an invalid
// colon form.
func ParseDuration(text string) (int64, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return 0, false
	}
	if m := colonRe.FindStringSubmatch(trimmed); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if minutes > 59 {
			return 0, false
		}
		return int64(hours)*3600 + int64(minutes)*60, true
	}
	if strings.Contains(trimmed, ":") {
		return 0, false
	}
	m := hmsRe.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, false
	}
	if m[1] == "" && m[2] == "" && m[3] == "" {
		return 0, false
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return int64(hours)*3600 + int64(minutes)*60 + int64(seconds), true
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// FormatDuration renders seconds as "{h}h {m}m {s}s", dropping zero-valued
// leading units. Zero renders as "0s"; negative values render as "N/A".
func FormatDuration(totalSeconds int64) string {
	if totalSeconds < 0 {
		return "N/A"
	}
	if totalSeconds == 0 {
		return "0s"
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// FormatClockTime renders the local wall-clock time of t as "03:04 PM".
func FormatClockTime(t time.Time) string {
	return t.Local().Format("03:04 PM")
}

// FormatDate renders the local calendar date of t.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// LocalDayBounds returns the half-open absolute-instant range
// [start of day's local date, start of the next local date). Queries against
// UTC-stored timestamps use this range instead of truncating stored values.
func LocalDayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// ResolveDateKeyword maps today/yesterday/tomorrow (relative to now) or a
// literal YYYY-MM-DD to the start of that local day.
func ResolveDateKeyword(text string, now time.Time) (time.Time, error) {
	day, _ := LocalDayBounds(now)
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "today":
		return day, nil
	case "yesterday":
		return day.AddDate(0, 0, -1), nil
	case "tomorrow":
		return day.AddDate(0, 0, 1), nil
	}
	parsed, err := time.ParseInLocation(DateLayout, strings.TrimSpace(text), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date (want YYYY-MM-DD, today, yesterday, or tomorrow)", apperrors.ErrInvalidInput, text)
	}
	return parsed, nil
}

// IsValidMonth reports whether text is a YYYY-MM month.
func IsValidMonth(text string) bool {
	_, err := time.Parse("2006-01", text)
	return err == nil
}

// IsValidYear reports whether text is a four-digit year.
func IsValidYear(text string) bool {
	if len(text) != 4 {
		return false
	}
	_, err := strconv.Atoi(text)
	return err == nil
}
