package service

import (
	"fmt"
	"strings"
	"time"

	"timecli/internal/modules/session/domain"
	"timecli/internal/modules/session/dto"
	"timecli/internal/platform/clock"
	apperrors "timecli/internal/platform/errors"
	"timecli/internal/platform/id"
	"timecli/internal/platform/timeutil"
)

// SessionService turns raw command input into validated session values. All
// persistence-side checks (overlap, single-active) stay in the store.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

func (s *SessionService) Now() time.Time {
	return s.clock.Now()
}

// NewOpenSession builds the row a start operation inserts.
func (s *SessionService) NewOpenSession() domain.Session {
	return domain.Session{ID: s.idGen.New(), Start: s.clock.Now()}
}

// ResolveAdd builds a closed session from add arguments. Exactly one of
// Range ("HH:MM-HH:MM" on the given date) or Duration (a block ending now)
// must be present.
func (s *SessionService) ResolveAdd(input dto.AddInput) (domain.Session, error) {
	switch {
	case input.Range != "" && input.Duration != "":
		return domain.Session{}, fmt.Errorf("%w: range and duration are mutually exclusive", apperrors.ErrInvalidInput)
	case input.Range == "" && input.Duration == "":
		return domain.Session{}, fmt.Errorf("%w: either a time range or a duration is required", apperrors.ErrInvalidInput)
	case input.Duration != "":
		if input.Date != "" {
			return domain.Session{}, fmt.Errorf("%w: a duration always ends now, it cannot carry a date", apperrors.ErrInvalidInput)
		}
		seconds, ok := timeutil.ParseDuration(input.Duration)
		if !ok || seconds <= 0 {
			return domain.Session{}, fmt.Errorf("%w: unrecognized duration %q", apperrors.ErrInvalidInput, input.Duration)
		}
		end := s.clock.Now().Truncate(time.Second)
		return domain.Session{ID: s.idGen.New(), Start: end.Add(-time.Duration(seconds) * time.Second), End: end}, nil
	}

	day, err := timeutil.ResolveDateKeyword(input.Date, s.clock.Now())
	if err != nil {
		return domain.Session{}, err
	}
	start, end, err := parseRange(input.Range, day)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{ID: s.idGen.New(), Start: start, End: end}, nil
}

func parseRange(text string, day time.Time) (time.Time, time.Time, error) {
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q is not a range (want START-END)", apperrors.ErrInvalidInput, text)
	}
	start, err := timeutil.ParseClockTime(parts[0], day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := timeutil.ParseClockTime(parts[1], day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidRange
	}
	return start, end, nil
}

// ResolveEdit computes the new endpoints for a closed session. Each text is
// either a relative adjustment applied to the original endpoint or an
// absolute clock time on the original endpoint's date.
func (s *SessionService) ResolveEdit(original domain.Session, startText, endText string) (time.Time, time.Time, error) {
	if startText == "" && endText == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: nothing to edit, give a new start or end", apperrors.ErrInvalidInput)
	}
	if original.Open() {
		return time.Time{}, time.Time{}, apperrors.ErrSessionRunning
	}
	newStart, newEnd := original.Start, original.End
	var err error
	if startText != "" {
		if newStart, err = resolveEndpoint(startText, original.Start); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endText != "" {
		if newEnd, err = resolveEndpoint(endText, original.End); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if !newStart.Before(newEnd) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidRange
	}
	return newStart, newEnd, nil
}

func resolveEndpoint(text string, original time.Time) (time.Time, error) {
	if adj := timeutil.ParseAdjustment(text); adj != nil {
		return original.Add(adj.Amount), nil
	}
	return timeutil.ParseClockTime(text, original)
}

// ResolveListRange maps list arguments to an absolute query range and an
// optional in-memory filter. Zero bounds mean unbounded.
func (s *SessionService) ResolveListRange(input dto.ListInput) (time.Time, time.Time, *domain.Filter, error) {
	set := 0
	for _, on := range []bool{input.All, input.Date != "", input.Filter != ""} {
		if on {
			set++
		}
	}
	if set > 1 {
		return time.Time{}, time.Time{}, nil, fmt.Errorf("%w: choose one of --all, --date or --filter", apperrors.ErrInvalidInput)
	}
	switch {
	case input.All:
		return time.Time{}, time.Time{}, nil, nil
	case input.Filter != "":
		filter, err := domain.ParseFilter(input.Filter, s.clock.Now())
		if err != nil {
			return time.Time{}, time.Time{}, nil, err
		}
		return time.Time{}, time.Time{}, &filter, nil
	default:
		day, err := timeutil.ResolveDateKeyword(input.Date, s.clock.Now())
		if err != nil {
			return time.Time{}, time.Time{}, nil, err
		}
		from, to := timeutil.LocalDayBounds(day)
		return from, to, nil, nil
	}
}

// ResolveDay maps a date keyword or YYYY-MM-DD literal to the start of that
// local day.
func (s *SessionService) ResolveDay(text string) (time.Time, error) {
	return timeutil.ResolveDateKeyword(text, s.clock.Now())
}

// ResolveImport parses wire records into sessions with fresh ids. Records
// that fail validation are reported per entry, not as a batch error.
func (s *SessionService) ResolveImport(records []dto.Record) ([]domain.Session, []dto.SkippedRecord) {
	sessions := make([]domain.Session, 0, len(records))
	var skipped []dto.SkippedRecord
	for _, record := range records {
		start, err := time.Parse(time.RFC3339, record.Start)
		if err != nil {
			skipped = append(skipped, dto.SkippedRecord{Record: record, Reason: fmt.Sprintf("bad start_time %q", record.Start)})
			continue
		}
		end, err := time.Parse(time.RFC3339, record.End)
		if err != nil {
			skipped = append(skipped, dto.SkippedRecord{Record: record, Reason: fmt.Sprintf("bad end_time %q", record.End)})
			continue
		}
		if !start.Before(end) {
			skipped = append(skipped, dto.SkippedRecord{Record: record, Reason: "end not after start"})
			continue
		}
		sessions = append(sessions, domain.Session{ID: s.idGen.New(), Start: start.Local(), End: end.Local()})
	}
	return sessions, skipped
}
