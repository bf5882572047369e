package dto

import "time"

type LogSlotInput struct {
	Date    string
	Slot    string
	Minutes int
}

type LogSlotOutput struct {
	Date          string
	SlotKey       string
	LoggedMinutes int
	BankedMinutes int
}

type RedeemInput struct {
	Date    string
	Slot    string
	Minutes int
}

type RedeemOutput struct {
	Date         string
	SlotKey      string
	Redeemed     int
	NewSlotValue int
	NewBalance   int
}

type BalanceOutput struct {
	Minutes int
}

type StatementInput struct {
	Limit  int
	Offset int
}

type TransactionView struct {
	ID          string
	CreatedAt   time.Time
	Type        string
	Minutes     int
	SourceDate  string
	SourceSlot  string
	Description string
}

type SlotView struct {
	Key     string
	Display string
	Minutes int
	Target  int
}

type DayGridOutput struct {
	Date         string
	Slots        []SlotView
	TotalMinutes int
}
