package in

import (
	"context"

	"timecli/internal/modules/session/dto"
	sessionin "timecli/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (dto.StartOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Add(ctx context.Context, date, timeRange, duration string) (dto.AddOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Date: date, Range: timeRange, Duration: duration})
}

func (h CLIHandler) Edit(ctx context.Context, idPrefix, start, end string) (dto.EditOutput, error) {
	return h.usecase.Edit(ctx, dto.EditInput{IDPrefix: idPrefix, Start: start, End: end})
}

func (h CLIHandler) Delete(ctx context.Context, idPrefix string) (dto.DeleteOutput, error) {
	return h.usecase.Delete(ctx, idPrefix)
}

func (h CLIHandler) List(ctx context.Context, date string, all bool, filter string, descending bool) ([]dto.SessionView, error) {
	return h.usecase.List(ctx, dto.ListInput{Date: date, All: all, Filter: filter, Descending: descending})
}

func (h CLIHandler) Import(ctx context.Context, records []dto.Record, skipConflicts bool) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, dto.ImportInput{Records: records, SkipConflicts: skipConflicts})
}

func (h CLIHandler) Export(ctx context.Context, from, to string) ([]dto.Record, error) {
	return h.usecase.Export(ctx, dto.ExportInput{From: from, To: to})
}
