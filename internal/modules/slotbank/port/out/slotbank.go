package out

import (
	"context"

	"timecli/internal/modules/slotbank/domain"
)

// SlotStore persists the daily slot grid and the bank ledger. A date's row
// is created lazily on first write. WriteSlot and Redeem are atomic: the
// slot column and the ledger entry land together or not at all.
type SlotStore interface {
	// WriteSlot overwrites the slot's value for the date and, when deposit
	// is non-nil, appends it to the ledger in the same transaction.
	WriteSlot(ctx context.Context, date string, slot domain.Slot, minutes int, deposit *domain.Transaction) error

	// Redeem reads the slot value and bank balance, caps the withdrawal via
	// domain.CapRedeem, then updates the slot and appends the withdrawal.
	// Fails with ErrBankEmpty, ErrSlotFull or ErrNothingToRedeem. The
	// withdrawal's Minutes field is filled with the capped amount.
	Redeem(ctx context.Context, date string, slot domain.Slot, requested, target int, withdrawal domain.Transaction) (redeemed, newValue, newBalance int, err error)

	// Balance returns sum(deposits) - sum(withdrawals).
	Balance(ctx context.Context) (int, error)

	// Transactions lists ledger entries newest first.
	Transactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error)

	// DayGrid returns every slot's minutes for the date, all zero when the
	// row does not exist.
	DayGrid(ctx context.Context, date string) (map[string]int, error)

	// DailyTotals returns the summed slot minutes per recorded date.
	DailyTotals(ctx context.Context) (map[string]int, error)

	// Reset clears the grid and the ledger in one transaction.
	Reset(ctx context.Context) error
}
