package out

import (
	"context"

	"timecli/internal/modules/report/domain"
	reportout "timecli/internal/modules/report/port/out"
	sessiondto "timecli/internal/modules/session/dto"
	sessionin "timecli/internal/modules/session/port/in"
)

// SessionSource turns the interval ledger's closed sessions into aggregation
// entries.
type SessionSource struct {
	sessions sessionin.Usecase
}

func NewSessionSource(sessions sessionin.Usecase) reportout.ActivitySource {
	return &SessionSource{sessions: sessions}
}

func (s *SessionSource) Entries(ctx context.Context) ([]domain.Entry, error) {
	views, err := s.sessions.List(ctx, sessiondto.ListInput{All: true})
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(views))
	for _, view := range views {
		entries = append(entries, domain.Entry{Start: view.StartedAt, Seconds: view.DurationSeconds})
	}
	return entries, nil
}
