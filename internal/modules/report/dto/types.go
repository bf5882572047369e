package dto

import "time"

// SummaryInput narrows the summary to one month (YYYY-MM) or year (YYYY).
// Setting both is an error; neither means all history.
type SummaryInput struct {
	Month string
	Year  string
}

type DayLine struct {
	Day     string
	Seconds int64
	GoalMet bool
}

type SummaryOutput struct {
	TotalSeconds   int64
	ActiveDays     int
	AverageSeconds int64
	BestDay        DayLine
	WorstDay       DayLine
	Consistency    string
	CurrentStreak  int
	LongestStreak  int
}

type WeekdayLine struct {
	Weekday time.Weekday
	Seconds int64
}

type ReportOutput struct {
	Days          []DayLine
	Weekdays      []WeekdayLine
	CurrentStreak int
	LongestStreak int
	GoalSeconds   int64
}

type ETAOutput struct {
	GoalSeconds      int64
	DoneSeconds      int64
	RemainingSeconds int64
	GoalMet          bool
	ProjectedEnd     time.Time
}
