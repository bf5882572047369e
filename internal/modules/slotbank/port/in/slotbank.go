package in

import (
	"context"

	"timecli/internal/modules/slotbank/dto"
)

type Usecase interface {
	LogSlot(ctx context.Context, input dto.LogSlotInput) (dto.LogSlotOutput, error)
	Redeem(ctx context.Context, input dto.RedeemInput) (dto.RedeemOutput, error)
	Balance(ctx context.Context) (dto.BalanceOutput, error)
	Statement(ctx context.Context, input dto.StatementInput) ([]dto.TransactionView, error)
	DayGrid(ctx context.Context, date string) (dto.DayGridOutput, error)
	Reset(ctx context.Context) error
}
