package service

import (
	"fmt"

	"timecli/internal/modules/slotbank/domain"
	"timecli/internal/platform/clock"
	apperrors "timecli/internal/platform/errors"
	"timecli/internal/platform/id"
	"timecli/internal/platform/timeutil"
)

// SlotBankService validates slot/bank command input and stamps ledger
// entries with ids and timestamps.
type SlotBankService struct {
	clock  clock.Clock
	idGen  id.Generator
	target int
}

func NewSlotBankService(clock clock.Clock, idGen id.Generator, targetMinutes int) *SlotBankService {
	return &SlotBankService{clock: clock, idGen: idGen, target: targetMinutes}
}

func (s *SlotBankService) TargetMinutes() int {
	return s.target
}

// ResolveDate maps a keyword or YYYY-MM-DD literal to the stored date key.
func (s *SlotBankService) ResolveDate(text string) (string, error) {
	day, err := timeutil.ResolveDateKeyword(text, s.clock.Now())
	if err != nil {
		return "", err
	}
	return timeutil.FormatDate(day), nil
}

// ResolveSlot accepts a slot key, 24-hour window or display label.
func (s *SlotBankService) ResolveSlot(identifier string) (domain.Slot, error) {
	slot, ok := domain.FindSlot(identifier)
	if !ok {
		return domain.Slot{}, fmt.Errorf("%w: unknown slot %q (want e.g. S08_09 or \"08:00 - 09:00\")", apperrors.ErrInvalidInput, identifier)
	}
	return slot, nil
}

// NewDeposit builds the ledger entry for minutes banked past a slot's target.
func (s *SlotBankService) NewDeposit(date string, slot domain.Slot, minutes int) domain.Transaction {
	return domain.Transaction{
		ID:          s.idGen.New(),
		CreatedAt:   s.clock.Now(),
		Type:        domain.TypeDeposit,
		Minutes:     minutes,
		SourceDate:  date,
		SourceSlot:  slot.Key,
		Description: fmt.Sprintf("Overflow from %s on %s", slot.Window, date),
	}
}

// NewWithdrawal builds the ledger entry template for a redemption; the store
// fills Minutes with the capped amount.
func (s *SlotBankService) NewWithdrawal(date string, slot domain.Slot) domain.Transaction {
	return domain.Transaction{
		ID:          s.idGen.New(),
		CreatedAt:   s.clock.Now(),
		Type:        domain.TypeWithdrawal,
		SourceDate:  date,
		SourceSlot:  slot.Key,
		Description: fmt.Sprintf("Redeemed into %s on %s", slot.Window, date),
	}
}
