package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "timecli/internal/platform/errors"
	"timecli/internal/platform/timeutil"
)

// Filter is one parsed "field op value" expression from the list command.
// The grammar is closed: date supports only equality, duration supports
// =, > and >=.
type Filter struct {
	Field FilterField
	Op    FilterOp

	day     string
	seconds int64
}

type FilterField string

const (
	FieldDate     FilterField = "date"
	FieldDuration FilterField = "duration"
)

type FilterOp string

const (
	OpEq  FilterOp = "="
	OpGt  FilterOp = ">"
	OpGte FilterOp = ">="
)

// ParseFilter parses expressions such as "date = yesterday" or
// "duration >= 1h30m". now anchors date keywords.
func ParseFilter(text string, now time.Time) (Filter, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Filter{}, fmt.Errorf("%w: filter must be \"field op value\", got %q", apperrors.ErrInvalidInput, text)
	}
	field, op, value := FilterField(fields[0]), FilterOp(fields[1]), fields[2]
	switch field {
	case FieldDate:
		if op != OpEq {
			return Filter{}, fmt.Errorf("%w: date filter supports only =, got %q", apperrors.ErrInvalidInput, op)
		}
		day, err := timeutil.ResolveDateKeyword(value, now)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Field: field, Op: op, day: timeutil.FormatDate(day)}, nil
	case FieldDuration:
		if op != OpEq && op != OpGt && op != OpGte {
			return Filter{}, fmt.Errorf("%w: duration filter supports =, > or >=, got %q", apperrors.ErrInvalidInput, op)
		}
		seconds, ok := timeutil.ParseDuration(value)
		if !ok {
			return Filter{}, fmt.Errorf("%w: unrecognized duration %q", apperrors.ErrInvalidInput, value)
		}
		return Filter{Field: field, Op: op, seconds: seconds}, nil
	default:
		return Filter{}, fmt.Errorf("%w: unknown filter field %q (want date or duration)", apperrors.ErrInvalidInput, fields[0])
	}
}

// Matches evaluates the filter against one closed session. Day comparison
// uses the session's local start date.
func (f Filter) Matches(s Session) bool {
	switch f.Field {
	case FieldDate:
		return timeutil.FormatDate(s.Start) == f.day
	case FieldDuration:
		seconds := s.DurationSeconds()
		switch f.Op {
		case OpEq:
			return seconds == f.seconds
		case OpGt:
			return seconds > f.seconds
		case OpGte:
			return seconds >= f.seconds
		}
	}
	return false
}
