package domain

import "time"

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

// Transaction is one append-only bank ledger entry. The balance is always
// derived from the ledger, never stored.
type Transaction struct {
	ID          string
	CreatedAt   time.Time
	Type        TransactionType
	Minutes     int
	SourceDate  string
	SourceSlot  string
	Description string
}

// SplitLog divides logged input minutes between the slot and the bank: the
// slot takes up to target, the excess is deposited.
func SplitLog(inputMinutes, target int) (logged, banked int) {
	if inputMinutes <= target {
		return inputMinutes, 0
	}
	return target, inputMinutes - target
}

// CapRedeem bounds a withdrawal request by the slot's remaining headroom and
// the bank balance. A non-positive result means nothing can be redeemed.
func CapRedeem(requested, target, current, balance int) int {
	amount := requested
	if headroom := target - current; headroom < amount {
		amount = headroom
	}
	if balance < amount {
		amount = balance
	}
	return amount
}
