package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timecli/internal/modules/report/domain"
	"timecli/internal/modules/report/dto"
	"timecli/internal/modules/report/service"
	"timecli/internal/modules/report/usecase"
	"timecli/internal/platform/clock"
	apperrors "timecli/internal/platform/errors"
)

type staticSource struct {
	entries []domain.Entry
}

func (s staticSource) Entries(context.Context) ([]domain.Entry, error) {
	return s.entries, nil
}

func entry(year int, month time.Month, day, hour int, seconds int64) domain.Entry {
	return domain.Entry{Start: time.Date(year, month, day, hour, 0, 0, 0, time.Local), Seconds: seconds}
}

func TestSummaryAggregatesAndStreaks(t *testing.T) {
	t.Parallel()
	source := staticSource{entries: []domain.Entry{
		entry(2024, 6, 10, 9, 9*3600),
		entry(2024, 6, 11, 9, 7*3600),
		entry(2024, 6, 12, 9, 8*3600),
		entry(2024, 6, 13, 9, 8*3600),
	}}
	clk := clock.Fixed{Instant: time.Date(2024, 6, 14, 10, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(service.NewReportService(clk, 8*time.Hour), source)

	out, err := uc.Summary(context.Background(), dto.SummaryInput{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if out.TotalSeconds != 32*3600 || out.ActiveDays != 4 {
		t.Fatalf("total=%d days=%d", out.TotalSeconds, out.ActiveDays)
	}
	if out.AverageSeconds != 8*3600 {
		t.Fatalf("average = %d", out.AverageSeconds)
	}
	if out.BestDay.Day != "2024-06-10" || out.WorstDay.Day != "2024-06-11" {
		t.Fatalf("best=%+v worst=%+v", out.BestDay, out.WorstDay)
	}
	if out.Consistency != "4 / 4 days" {
		t.Fatalf("consistency = %q", out.Consistency)
	}
	if out.CurrentStreak != 2 || out.LongestStreak != 2 {
		t.Fatalf("streaks = %d/%d, want 2/2", out.CurrentStreak, out.LongestStreak)
	}
}

func TestSummaryPeriodFilters(t *testing.T) {
	t.Parallel()
	source := staticSource{entries: []domain.Entry{
		entry(2023, 12, 31, 9, 3600),
		entry(2024, 1, 2, 9, 7200),
	}}
	clk := clock.Fixed{Instant: time.Date(2024, 2, 1, 10, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(service.NewReportService(clk, 8*time.Hour), source)
	ctx := context.Background()

	out, err := uc.Summary(ctx, dto.SummaryInput{Month: "2024-01"})
	if err != nil {
		t.Fatalf("month summary: %v", err)
	}
	if out.TotalSeconds != 7200 {
		t.Fatalf("month total = %d", out.TotalSeconds)
	}

	out, err = uc.Summary(ctx, dto.SummaryInput{Year: "2023"})
	if err != nil {
		t.Fatalf("year summary: %v", err)
	}
	if out.TotalSeconds != 3600 {
		t.Fatalf("year total = %d", out.TotalSeconds)
	}

	if _, err := uc.Summary(ctx, dto.SummaryInput{Month: "2024-01", Year: "2024"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("month+year error = %v, want ErrInvalidInput", err)
	}
	if _, err := uc.Summary(ctx, dto.SummaryInput{Month: "January"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("bad month error = %v, want ErrInvalidInput", err)
	}
}

func TestReportListsDaysAndWeekdays(t *testing.T) {
	t.Parallel()
	source := staticSource{entries: []domain.Entry{
		entry(2024, 6, 10, 9, 9*3600),
		entry(2024, 6, 11, 9, 3600),
	}}
	clk := clock.Fixed{Instant: time.Date(2024, 6, 11, 23, 0, 0, 0, time.Local)}
	uc := usecase.NewInteractor(service.NewReportService(clk, 8*time.Hour), source)

	out, err := uc.Report(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(out.Days) != 2 || out.Days[0].Day != "2024-06-10" {
		t.Fatalf("days = %+v", out.Days)
	}
	if !out.Days[0].GoalMet || out.Days[1].GoalMet {
		t.Fatalf("goal flags wrong: %+v", out.Days)
	}
	if len(out.Weekdays) != 2 {
		t.Fatalf("weekdays = %+v", out.Weekdays)
	}
}

func TestETA(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 6, 11, 14, 0, 0, 0, time.Local)
	source := staticSource{entries: []domain.Entry{
		entry(2024, 6, 11, 9, 3*3600),
	}}
	uc := usecase.NewInteractor(service.NewReportService(clock.Fixed{Instant: now}, 8*time.Hour), source)

	out, err := uc.ETA(context.Background())
	if err != nil {
		t.Fatalf("eta: %v", err)
	}
	if out.GoalMet {
		t.Fatalf("goal should not be met yet")
	}
	if out.RemainingSeconds != 5*3600 {
		t.Fatalf("remaining = %d, want 5h", out.RemainingSeconds)
	}
	if want := now.Add(5 * time.Hour); !out.ProjectedEnd.Equal(want) {
		t.Fatalf("projected end = %v, want %v", out.ProjectedEnd, want)
	}
}
