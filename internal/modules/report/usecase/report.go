package usecase

import (
	"context"
	"time"

	"timecli/internal/modules/report/domain"
	"timecli/internal/modules/report/dto"
	reportin "timecli/internal/modules/report/port/in"
	reportout "timecli/internal/modules/report/port/out"
	"timecli/internal/modules/report/service"
	"timecli/internal/platform/timeutil"
)

type Interactor struct {
	svc    *service.ReportService
	source reportout.ActivitySource
}

func NewInteractor(svc *service.ReportService, source reportout.ActivitySource) reportin.Usecase {
	return &Interactor{svc: svc, source: source}
}

func (i *Interactor) Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error) {
	entries, err := i.source.Entries(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	entries, err = i.svc.ApplyPeriod(entries, input)
	if err != nil {
		return dto.SummaryOutput{}, err
	}

	goal := i.svc.GoalSeconds()
	totals := domain.AggregateByLocalDay(entries)
	days := domain.SortedDays(totals)
	current, longest := domain.Streaks(days, totals, goal, i.svc.Now())

	out := dto.SummaryOutput{
		ActiveDays:    len(days),
		Consistency:   domain.Consistency(days),
		CurrentStreak: current,
		LongestStreak: longest,
	}
	for _, day := range days {
		out.TotalSeconds += totals[day]
	}
	if len(days) > 0 {
		out.AverageSeconds = out.TotalSeconds / int64(len(days))
		best, worst := domain.BestAndWorstDay(days, totals)
		out.BestDay = dayLine(best, goal)
		out.WorstDay = dayLine(worst, goal)
	}
	return out, nil
}

func (i *Interactor) Report(ctx context.Context) (dto.ReportOutput, error) {
	entries, err := i.source.Entries(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}

	goal := i.svc.GoalSeconds()
	totals := domain.AggregateByLocalDay(entries)
	days := domain.SortedDays(totals)
	current, longest := domain.Streaks(days, totals, goal, i.svc.Now())

	out := dto.ReportOutput{
		CurrentStreak: current,
		LongestStreak: longest,
		GoalSeconds:   goal,
	}
	for _, day := range days {
		out.Days = append(out.Days, dayLine(domain.DayTotal{Day: day, Seconds: totals[day]}, goal))
	}
	breakdown := domain.WeekdayBreakdown(entries)
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		if seconds, ok := breakdown[weekday]; ok {
			out.Weekdays = append(out.Weekdays, dto.WeekdayLine{Weekday: weekday, Seconds: seconds})
		}
	}
	return out, nil
}

// ETA reports how far today is from the daily goal and when it would be
// reached by tracking continuously from now.
func (i *Interactor) ETA(ctx context.Context) (dto.ETAOutput, error) {
	entries, err := i.source.Entries(ctx)
	if err != nil {
		return dto.ETAOutput{}, err
	}
	now := i.svc.Now()
	today := timeutil.FormatDate(now)
	done := domain.AggregateByLocalDay(entries)[today]
	goal := i.svc.GoalSeconds()

	out := dto.ETAOutput{GoalSeconds: goal, DoneSeconds: done}
	if done >= goal {
		out.GoalMet = true
		return out, nil
	}
	out.RemainingSeconds = goal - done
	out.ProjectedEnd = now.Add(time.Duration(out.RemainingSeconds) * time.Second)
	return out, nil
}

func dayLine(total domain.DayTotal, goal int64) dto.DayLine {
	return dto.DayLine{Day: total.Day, Seconds: total.Seconds, GoalMet: domain.GoalMet(total.Seconds, goal)}
}
