package usecase

import (
	"context"
	"fmt"

	"timecli/internal/modules/slotbank/domain"
	"timecli/internal/modules/slotbank/dto"
	slotbankin "timecli/internal/modules/slotbank/port/in"
	slotbankout "timecli/internal/modules/slotbank/port/out"
	"timecli/internal/modules/slotbank/service"
	apperrors "timecli/internal/platform/errors"
)

type Interactor struct {
	svc   *service.SlotBankService
	store slotbankout.SlotStore
}

func NewInteractor(svc *service.SlotBankService, store slotbankout.SlotStore) slotbankin.Usecase {
	return &Interactor{svc: svc, store: store}
}

func (i *Interactor) LogSlot(ctx context.Context, input dto.LogSlotInput) (dto.LogSlotOutput, error) {
	if input.Minutes < 0 {
		return dto.LogSlotOutput{}, fmt.Errorf("%w: minutes cannot be negative", apperrors.ErrInvalidInput)
	}
	date, err := i.svc.ResolveDate(input.Date)
	if err != nil {
		return dto.LogSlotOutput{}, err
	}
	slot, err := i.svc.ResolveSlot(input.Slot)
	if err != nil {
		return dto.LogSlotOutput{}, err
	}
	logged, banked := domain.SplitLog(input.Minutes, i.svc.TargetMinutes())
	var deposit *domain.Transaction
	if banked > 0 {
		entry := i.svc.NewDeposit(date, slot, banked)
		deposit = &entry
	}
	if err := i.store.WriteSlot(ctx, date, slot, logged, deposit); err != nil {
		return dto.LogSlotOutput{}, err
	}
	return dto.LogSlotOutput{Date: date, SlotKey: slot.Key, LoggedMinutes: logged, BankedMinutes: banked}, nil
}

func (i *Interactor) Redeem(ctx context.Context, input dto.RedeemInput) (dto.RedeemOutput, error) {
	if input.Minutes <= 0 {
		return dto.RedeemOutput{}, fmt.Errorf("%w: minutes to redeem must be positive", apperrors.ErrInvalidInput)
	}
	date, err := i.svc.ResolveDate(input.Date)
	if err != nil {
		return dto.RedeemOutput{}, err
	}
	slot, err := i.svc.ResolveSlot(input.Slot)
	if err != nil {
		return dto.RedeemOutput{}, err
	}
	withdrawal := i.svc.NewWithdrawal(date, slot)
	redeemed, newValue, newBalance, err := i.store.Redeem(ctx, date, slot, input.Minutes, i.svc.TargetMinutes(), withdrawal)
	if err != nil {
		return dto.RedeemOutput{}, err
	}
	return dto.RedeemOutput{
		Date:         date,
		SlotKey:      slot.Key,
		Redeemed:     redeemed,
		NewSlotValue: newValue,
		NewBalance:   newBalance,
	}, nil
}

func (i *Interactor) Balance(ctx context.Context) (dto.BalanceOutput, error) {
	minutes, err := i.store.Balance(ctx)
	if err != nil {
		return dto.BalanceOutput{}, err
	}
	return dto.BalanceOutput{Minutes: minutes}, nil
}

func (i *Interactor) Statement(ctx context.Context, input dto.StatementInput) ([]dto.TransactionView, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	transactions, err := i.store.Transactions(ctx, limit, input.Offset)
	if err != nil {
		return nil, err
	}
	views := make([]dto.TransactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, dto.TransactionView{
			ID:          tx.ID,
			CreatedAt:   tx.CreatedAt,
			Type:        string(tx.Type),
			Minutes:     tx.Minutes,
			SourceDate:  tx.SourceDate,
			SourceSlot:  tx.SourceSlot,
			Description: tx.Description,
		})
	}
	return views, nil
}

func (i *Interactor) DayGrid(ctx context.Context, dateText string) (dto.DayGridOutput, error) {
	date, err := i.svc.ResolveDate(dateText)
	if err != nil {
		return dto.DayGridOutput{}, err
	}
	grid, err := i.store.DayGrid(ctx, date)
	if err != nil {
		return dto.DayGridOutput{}, err
	}
	out := dto.DayGridOutput{Date: date}
	for _, slot := range domain.Slots() {
		minutes := grid[slot.Column]
		out.Slots = append(out.Slots, dto.SlotView{
			Key:     slot.Key,
			Display: slot.Display,
			Minutes: minutes,
			Target:  i.svc.TargetMinutes(),
		})
		out.TotalMinutes += minutes
	}
	return out, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.store.Reset(ctx)
}
