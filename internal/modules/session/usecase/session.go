package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"timecli/internal/modules/session/domain"
	"timecli/internal/modules/session/dto"
	sessionin "timecli/internal/modules/session/port/in"
	sessionout "timecli/internal/modules/session/port/out"
	"timecli/internal/modules/session/service"
	apperrors "timecli/internal/platform/errors"
)

type Interactor struct {
	svc   *service.SessionService
	store sessionout.SessionStore
}

func NewInteractor(svc *service.SessionService, store sessionout.SessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) Start(ctx context.Context) (dto.StartOutput, error) {
	session := i.svc.NewOpenSession()
	if err := i.store.StartSession(ctx, session); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{SessionID: session.ID, StartedAt: session.Start}, nil
}

func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	session, err := i.store.StopSession(ctx, i.svc.Now())
	if err != nil {
		return dto.StopOutput{}, err
	}
	return dto.StopOutput{
		SessionID:       session.ID,
		StartedAt:       session.Start,
		EndedAt:         session.End,
		DurationSeconds: session.DurationSeconds(),
	}, nil
}

// Status reports the running session, or Active=false with no error when
// the tracker is idle.
func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	session, err := i.store.FindActive(ctx)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.StatusOutput{}, nil
	}
	if err != nil {
		return dto.StatusOutput{}, err
	}
	elapsed := int64(i.svc.Now().Sub(session.Start).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	return dto.StatusOutput{
		Active:         true,
		SessionID:      session.ID,
		StartedAt:      session.Start,
		ElapsedSeconds: elapsed,
	}, nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error) {
	session, err := i.svc.ResolveAdd(input)
	if err != nil {
		return dto.AddOutput{}, err
	}
	if err := i.store.AddCompleted(ctx, session); err != nil {
		return dto.AddOutput{}, err
	}
	return dto.AddOutput{
		SessionID:       session.ID,
		StartedAt:       session.Start,
		EndedAt:         session.End,
		DurationSeconds: session.DurationSeconds(),
	}, nil
}

func (i *Interactor) Edit(ctx context.Context, input dto.EditInput) (dto.EditOutput, error) {
	original, err := i.store.ResolvePrefix(ctx, input.IDPrefix)
	if err != nil {
		return dto.EditOutput{}, err
	}
	newStart, newEnd, err := i.svc.ResolveEdit(original, input.Start, input.End)
	if err != nil {
		return dto.EditOutput{}, err
	}
	if err := i.store.Update(ctx, original.ID, newStart, newEnd); err != nil {
		return dto.EditOutput{}, err
	}
	return dto.EditOutput{
		SessionID:       original.ID,
		StartedAt:       newStart,
		EndedAt:         newEnd,
		DurationSeconds: int64(newEnd.Sub(newStart).Seconds()),
	}, nil
}

func (i *Interactor) Delete(ctx context.Context, idPrefix string) (dto.DeleteOutput, error) {
	session, err := i.store.ResolvePrefix(ctx, idPrefix)
	if err != nil {
		return dto.DeleteOutput{}, err
	}
	if err := i.store.Delete(ctx, session.ID); err != nil {
		return dto.DeleteOutput{}, err
	}
	return dto.DeleteOutput{SessionID: session.ID}, nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.SessionView, error) {
	from, to, filter, err := i.svc.ResolveListRange(input)
	if err != nil {
		return nil, err
	}
	sessions, err := i.store.ListClosed(ctx, from, to)
	if err != nil {
		return nil, err
	}
	views := make([]dto.SessionView, 0, len(sessions))
	for _, session := range sessions {
		if filter != nil && !filter.Matches(session) {
			continue
		}
		views = append(views, dto.SessionView{
			ID:              session.ID,
			StartedAt:       session.Start,
			EndedAt:         session.End,
			DurationSeconds: session.DurationSeconds(),
		})
	}
	if input.Descending {
		sort.SliceStable(views, func(a, b int) bool { return views[a].StartedAt.After(views[b].StartedAt) })
	}
	return views, nil
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	sessions, skipped := i.svc.ResolveImport(input.Records)
	if len(skipped) > 0 && !input.SkipConflicts {
		return dto.ImportOutput{}, fmt.Errorf("import aborted, invalid entry: %s", skipped[0].Reason)
	}
	imported, conflicts, err := i.store.ImportBatch(ctx, sessions, input.SkipConflicts)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	for _, conflict := range conflicts {
		record := recordFromSession(sessions[conflict.Index])
		skipped = append(skipped, dto.SkippedRecord{Record: record, Reason: conflict.Reason})
	}
	return dto.ImportOutput{Imported: imported, Skipped: skipped}, nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) ([]dto.Record, error) {
	from, to, err := i.exportBounds(input)
	if err != nil {
		return nil, err
	}
	sessions, err := i.store.ListClosed(ctx, from, to)
	if err != nil {
		return nil, err
	}
	records := make([]dto.Record, 0, len(sessions))
	for _, session := range sessions {
		records = append(records, recordFromSession(session))
	}
	return records, nil
}

func (i *Interactor) exportBounds(input dto.ExportInput) (time.Time, time.Time, error) {
	var from, to time.Time
	if input.From != "" {
		day, err := i.svc.ResolveDay(input.From)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = day
	}
	if input.To != "" {
		day, err := i.svc.ResolveDay(input.To)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// inclusive end date: extend to the start of the next local day
		to = day.AddDate(0, 0, 1)
	}
	return from, to, nil
}

func recordFromSession(session domain.Session) dto.Record {
	return dto.Record{
		ID:       session.ID,
		Start:    session.Start.Format(time.RFC3339),
		End:      session.End.Format(time.RFC3339),
		Duration: session.DurationSeconds(),
	}
}
