// Package domain holds the aggregation engine: pure functions over closed
// activity entries. Day bucketing is always by the local calendar date of an
// entry's start.
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"timecli/internal/platform/timeutil"
)

// Entry is one closed stretch of tracked time, from either store.
type Entry struct {
	Start   time.Time
	Seconds int64
}

// DayTotal pairs a local date key with its summed seconds.
type DayTotal struct {
	Day     string
	Seconds int64
}

// AggregateByLocalDay sums entries per local calendar day.
func AggregateByLocalDay(entries []Entry) map[string]int64 {
	totals := make(map[string]int64)
	for _, entry := range entries {
		totals[timeutil.FormatDate(entry.Start)] += entry.Seconds
	}
	return totals
}

// SortedDays lists the recorded day keys ascending. The YYYY-MM-DD form
// sorts chronologically as text.
func SortedDays(totals map[string]int64) []string {
	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// GoalMet reports whether a day's total reaches the goal.
func GoalMet(totalSeconds, goalSeconds int64) bool {
	return totalSeconds >= goalSeconds
}

// Streaks computes the longest and current goal-met streaks. longest counts
// runs of recorded goal-met days, broken only by an explicit goal-miss entry
// (unrecorded days do not retroactively break history). current walks
// backward from the most recent recorded day requiring calendar contiguity,
// and is zero unless that day is today or yesterday.
func Streaks(days []string, totals map[string]int64, goalSeconds int64, today time.Time) (current, longest int) {
	run := 0
	for _, day := range days {
		if GoalMet(totals[day], goalSeconds) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if len(days) == 0 {
		return 0, longest
	}

	last := days[len(days)-1]
	todayKey := timeutil.FormatDate(today)
	yesterdayKey := timeutil.FormatDate(today.AddDate(0, 0, -1))
	if last != todayKey && last != yesterdayKey {
		return 0, longest
	}
	for i := len(days) - 1; i >= 0; i-- {
		if !GoalMet(totals[days[i]], goalSeconds) {
			break
		}
		if i < len(days)-1 && !isPreviousDay(days[i], days[i+1]) {
			break
		}
		current++
	}
	return current, longest
}

func isPreviousDay(earlier, later string) bool {
	a, errA := time.Parse(timeutil.DateLayout, earlier)
	b, errB := time.Parse(timeutil.DateLayout, later)
	if errA != nil || errB != nil {
		return false
	}
	return a.AddDate(0, 0, 1).Equal(b)
}

// Consistency renders "active / span days" where span covers first through
// last recorded day inclusive.
func Consistency(days []string) string {
	if len(days) == 0 {
		return "0 / 0 days"
	}
	first, errA := time.Parse(timeutil.DateLayout, days[0])
	last, errB := time.Parse(timeutil.DateLayout, days[len(days)-1])
	if errA != nil || errB != nil {
		return "0 / 0 days"
	}
	span := int(last.Sub(first).Hours()/24) + 1
	return fmt.Sprintf("%d / %d days", len(days), span)
}

// BestAndWorstDay picks the extreme days, ties resolved by the earliest date.
func BestAndWorstDay(days []string, totals map[string]int64) (best, worst DayTotal) {
	for i, day := range days {
		total := totals[day]
		if i == 0 {
			best = DayTotal{Day: day, Seconds: total}
			worst = best
			continue
		}
		if total > best.Seconds {
			best = DayTotal{Day: day, Seconds: total}
		}
		if total < worst.Seconds {
			worst = DayTotal{Day: day, Seconds: total}
		}
	}
	return best, worst
}

// WeekdayBreakdown sums entry seconds by the local weekday of each start.
func WeekdayBreakdown(entries []Entry) map[time.Weekday]int64 {
	breakdown := make(map[time.Weekday]int64)
	for _, entry := range entries {
		breakdown[entry.Start.Local().Weekday()] += entry.Seconds
	}
	return breakdown
}

// FilterByMonth keeps entries whose local start date falls in the YYYY-MM
// month.
func FilterByMonth(entries []Entry, month string) []Entry {
	return filterByPrefix(entries, month+"-")
}

// FilterByYear keeps entries whose local start date falls in the YYYY year.
func FilterByYear(entries []Entry, year string) []Entry {
	return filterByPrefix(entries, year+"-")
}

func filterByPrefix(entries []Entry, prefix string) []Entry {
	var kept []Entry
	for _, entry := range entries {
		if strings.HasPrefix(timeutil.FormatDate(entry.Start), prefix) {
			kept = append(kept, entry)
		}
	}
	return kept
}
