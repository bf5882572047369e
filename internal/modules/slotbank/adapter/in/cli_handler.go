package in

import (
	"context"

	"timecli/internal/modules/slotbank/dto"
	slotbankin "timecli/internal/modules/slotbank/port/in"
)

type CLIHandler struct {
	usecase slotbankin.Usecase
}

func NewCLIHandler(usecase slotbankin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) LogSlot(ctx context.Context, date, slot string, minutes int) (dto.LogSlotOutput, error) {
	return h.usecase.LogSlot(ctx, dto.LogSlotInput{Date: date, Slot: slot, Minutes: minutes})
}

func (h CLIHandler) Redeem(ctx context.Context, date, slot string, minutes int) (dto.RedeemOutput, error) {
	return h.usecase.Redeem(ctx, dto.RedeemInput{Date: date, Slot: slot, Minutes: minutes})
}

func (h CLIHandler) Balance(ctx context.Context) (dto.BalanceOutput, error) {
	return h.usecase.Balance(ctx)
}

func (h CLIHandler) Statement(ctx context.Context, limit, offset int) ([]dto.TransactionView, error) {
	return h.usecase.Statement(ctx, dto.StatementInput{Limit: limit, Offset: offset})
}

func (h CLIHandler) DayGrid(ctx context.Context, date string) (dto.DayGridOutput, error) {
	return h.usecase.DayGrid(ctx, date)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
