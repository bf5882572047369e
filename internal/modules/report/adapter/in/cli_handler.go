package in

import (
	"context"

	"timecli/internal/modules/report/dto"
	reportin "timecli/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context, month, year string) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, dto.SummaryInput{Month: month, Year: year})
}

func (h CLIHandler) Report(ctx context.Context) (dto.ReportOutput, error) {
	return h.usecase.Report(ctx)
}

func (h CLIHandler) ETA(ctx context.Context) (dto.ETAOutput, error) {
	return h.usecase.ETA(ctx)
}
