package out

import (
	"context"
	"fmt"
	"time"

	"timecli/internal/modules/report/domain"
	reportout "timecli/internal/modules/report/port/out"
	slotbankout "timecli/internal/modules/slotbank/port/out"
	"timecli/internal/platform/timeutil"
)

// SlotSource adapts the slot grid's per-day minute totals. Each day becomes
// one entry anchored at local midnight, which keeps day bucketing and
// weekday breakdowns exact for this coarser model.
type SlotSource struct {
	slots slotbankout.SlotStore
}

func NewSlotSource(slots slotbankout.SlotStore) reportout.ActivitySource {
	return &SlotSource{slots: slots}
}

func (s *SlotSource) Entries(ctx context.Context) ([]domain.Entry, error) {
	totals, err := s.slots.DailyTotals(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(totals))
	for date, minutes := range totals {
		day, err := time.ParseInLocation(timeutil.DateLayout, date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("corrupt date key %q: %w", date, err)
		}
		entries = append(entries, domain.Entry{Start: day, Seconds: int64(minutes) * 60})
	}
	return entries, nil
}
