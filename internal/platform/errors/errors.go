package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRange    = errors.New("end time must be after start time")
	ErrNotFound        = errors.New("not found")
	ErrNoActiveSession = errors.New("no active session")
	ErrAlreadyActive   = errors.New("a session is already active")
	ErrSessionRunning  = errors.New("session is still running, stop it first")
	ErrBankEmpty       = errors.New("time bank is empty")
	ErrSlotFull        = errors.New("slot is already at or above target")
	ErrNothingToRedeem = errors.New("nothing to redeem")
)

// Conflict identifies an existing session an operation collided with.
type Conflict struct {
	ID    string
	Start time.Time
	End   time.Time
}

// OverlapError reports every stored session the proposed interval overlaps,
// so the caller can render the full conflict list.
type OverlapError struct {
	Conflicts []Conflict
}

func (e *OverlapError) Error() string {
	ids := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		ids = append(ids, c.ID)
	}
	return fmt.Sprintf("interval overlaps %d existing session(s): %s", len(e.Conflicts), strings.Join(ids, ", "))
}

// AmbiguousIDError reports every full id matching a short-id prefix. Ambiguity
// is never resolved silently; the caller retries with a longer prefix.
type AmbiguousIDError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("id prefix %q matches %d sessions: %s", e.Prefix, len(e.Matches), strings.Join(e.Matches, ", "))
}
