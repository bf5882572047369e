package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
//
// Now returns the instant in the local timezone: day bucketing and date
// keyword resolution work on local calendar days, while stores convert to
// UTC only at the persistence boundary.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
