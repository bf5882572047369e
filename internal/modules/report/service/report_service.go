package service

import (
	"fmt"
	"time"

	"timecli/internal/modules/report/domain"
	"timecli/internal/modules/report/dto"
	"timecli/internal/platform/clock"
	apperrors "timecli/internal/platform/errors"
	"timecli/internal/platform/timeutil"
)

// ReportService holds the goal threshold and the clock the aggregation
// anchors "today" on.
type ReportService struct {
	clock clock.Clock
	goal  time.Duration
}

func NewReportService(clock clock.Clock, dailyGoal time.Duration) *ReportService {
	return &ReportService{clock: clock, goal: dailyGoal}
}

func (s *ReportService) Now() time.Time {
	return s.clock.Now()
}

func (s *ReportService) GoalSeconds() int64 {
	return int64(s.goal.Seconds())
}

// ApplyPeriod narrows entries per the summary input. Month and year are
// mutually exclusive.
func (s *ReportService) ApplyPeriod(entries []domain.Entry, input dto.SummaryInput) ([]domain.Entry, error) {
	switch {
	case input.Month != "" && input.Year != "":
		return nil, fmt.Errorf("%w: month and year are mutually exclusive", apperrors.ErrInvalidInput)
	case input.Month != "":
		if !timeutil.IsValidMonth(input.Month) {
			return nil, fmt.Errorf("%w: %q is not a month (want YYYY-MM)", apperrors.ErrInvalidInput, input.Month)
		}
		return domain.FilterByMonth(entries, input.Month), nil
	case input.Year != "":
		if !timeutil.IsValidYear(input.Year) {
			return nil, fmt.Errorf("%w: %q is not a year (want YYYY)", apperrors.ErrInvalidInput, input.Year)
		}
		return domain.FilterByYear(entries, input.Year), nil
	default:
		return entries, nil
	}
}
