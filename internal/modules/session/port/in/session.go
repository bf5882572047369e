package in

import (
	"context"

	"timecli/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error)
	Edit(ctx context.Context, input dto.EditInput) (dto.EditOutput, error)
	Delete(ctx context.Context, idPrefix string) (dto.DeleteOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.SessionView, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
	Export(ctx context.Context, input dto.ExportInput) ([]dto.Record, error)
}
