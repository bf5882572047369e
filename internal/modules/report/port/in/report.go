package in

import (
	"context"

	"timecli/internal/modules/report/dto"
)

type Usecase interface {
	Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error)
	Report(ctx context.Context) (dto.ReportOutput, error)
	ETA(ctx context.Context) (dto.ETAOutput, error)
}
