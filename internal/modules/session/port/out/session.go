package out

import (
	"context"
	"time"

	"timecli/internal/modules/session/domain"
)

// SessionStore is the interval ledger. Implementations must run every
// multi-statement mutation in one transaction with its decision reads, and
// must back the single-open-session rule with a storage-level constraint.
type SessionStore interface {
	// StartSession records session as open and sets the active-session
	// pointer. Fails with ErrAlreadyActive if an open session exists.
	StartSession(ctx context.Context, session domain.Session) error

	// StopSession closes the open session at end and clears the
	// active-session pointer. Fails with ErrNoActiveSession.
	StopSession(ctx context.Context, end time.Time) (domain.Session, error)

	// FindActive returns the open session or ErrNoActiveSession.
	FindActive(ctx context.Context) (domain.Session, error)

	// AddCompleted inserts a closed session after checking it against every
	// stored closed interval. On conflict it returns *OverlapError and
	// leaves the store unchanged.
	AddCompleted(ctx context.Context, session domain.Session) error

	// Update rewrites both endpoints of an existing session, re-running the
	// overlap check with the session itself excluded.
	Update(ctx context.Context, id string, start, end time.Time) error

	// ResolvePrefix maps a short-id prefix to exactly one session, returning
	// ErrNotFound or *AmbiguousIDError otherwise.
	ResolvePrefix(ctx context.Context, prefix string) (domain.Session, error)

	// Delete removes a closed session by full id. Deleting the open session
	// fails with ErrSessionRunning.
	Delete(ctx context.Context, id string) error

	// ListClosed returns closed sessions ordered by start time ascending.
	// Zero from/to bounds mean unbounded; the range covers session starts
	// and is half-open.
	ListClosed(ctx context.Context, from, to time.Time) ([]domain.Session, error)

	// ImportBatch inserts the sessions in order inside one transaction.
	// With skipConflicts, entries that overlap (including earlier batch
	// entries) are reported in skipped and the rest commit; without it the
	// first conflict aborts the whole batch.
	ImportBatch(ctx context.Context, sessions []domain.Session, skipConflicts bool) (imported int, skipped []BatchConflict, err error)
}

// BatchConflict identifies one import entry rejected by the overlap check.
type BatchConflict struct {
	Index  int
	Reason string
}
