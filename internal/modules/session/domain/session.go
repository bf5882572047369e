package domain

import "time"

const SchemaVersion = 1

// Session is one recorded interval of tracked activity. A zero End means the
// session is still running.
type Session struct {
	ID    string
	Start time.Time
	End   time.Time
}

func (s Session) Open() bool {
	return s.End.IsZero()
}

// Duration is End-Start for closed sessions and zero while open.
func (s Session) Duration() time.Duration {
	if s.Open() {
		return 0
	}
	return s.End.Sub(s.Start)
}

func (s Session) DurationSeconds() int64 {
	return int64(s.Duration().Seconds())
}

// Overlaps reports whether the half-open interval [start, end) intersects
// this session's interval. Open sessions never overlap anything.
func (s Session) Overlaps(start, end time.Time) bool {
	if s.Open() {
		return false
	}
	return s.End.After(start) && s.Start.Before(end)
}

// ActiveSession is the fast-lookup record for the one session that may be
// running. It mirrors the open row in the sessions table and the two must
// change together.
type ActiveSession struct {
	SessionID string
	StartedAt time.Time
}
