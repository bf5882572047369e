package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	slotbankout "timecli/internal/modules/slotbank/adapter/out"
	"timecli/internal/modules/slotbank/dto"
	slotbankin "timecli/internal/modules/slotbank/port/in"
	"timecli/internal/modules/slotbank/service"
	"timecli/internal/modules/slotbank/usecase"
	"timecli/internal/platform/clock"
	apperrors "timecli/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type countingID struct {
	n int
}

func (c *countingID) New() string {
	c.n++
	return fmt.Sprintf("txn%04d", c.n)
}

func newUsecase(t *testing.T, target int) slotbankin.Usecase {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store, err := slotbankout.NewSQLiteSlotStore(db)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	clk := clock.Fixed{Instant: time.Date(2024, 5, 6, 20, 0, 0, 0, time.Local)}
	return usecase.NewInteractor(service.NewSlotBankService(clk, &countingID{}, target), store)
}

func TestLogSlotBanksExcess(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, 30)
	ctx := context.Background()

	out, err := uc.LogSlot(ctx, dto.LogSlotInput{Slot: "S08_09", Minutes: 45})
	if err != nil {
		t.Fatalf("log slot: %v", err)
	}
	if out.LoggedMinutes != 30 || out.BankedMinutes != 15 {
		t.Fatalf("logged=%d banked=%d, want 30/15", out.LoggedMinutes, out.BankedMinutes)
	}

	balance, err := uc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.Minutes != 15 {
		t.Fatalf("balance = %d, want 15", balance.Minutes)
	}

	// logging again overwrites the slot, it never sums
	out, err = uc.LogSlot(ctx, dto.LogSlotInput{Slot: "S08_09", Minutes: 10})
	if err != nil {
		t.Fatalf("relog slot: %v", err)
	}
	if out.LoggedMinutes != 10 || out.BankedMinutes != 0 {
		t.Fatalf("relog logged=%d banked=%d, want 10/0", out.LoggedMinutes, out.BankedMinutes)
	}
	grid, err := uc.DayGrid(ctx, "today")
	if err != nil {
		t.Fatalf("day grid: %v", err)
	}
	if grid.Slots[0].Minutes != 10 || grid.TotalMinutes != 10 {
		t.Fatalf("grid = %+v, want slot overwritten to 10", grid.Slots[0])
	}
}

func TestRedeemCapsByHeadroomAndBalance(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, 30)
	ctx := context.Background()

	// bank 50 minutes: 30+50=80 into one slot leaves 50 banked
	if _, err := uc.LogSlot(ctx, dto.LogSlotInput{Slot: "S08_09", Minutes: 80}); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
	if _, err := uc.LogSlot(ctx, dto.LogSlotInput{Slot: "S09_10", Minutes: 10}); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	out, err := uc.Redeem(ctx, dto.RedeemInput{Slot: "S09_10", Minutes: 100})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if out.Redeemed != 20 || out.NewSlotValue != 30 || out.NewBalance != 30 {
		t.Fatalf("redeem = %+v, want 20 redeemed, slot 30, balance 30", out)
	}
}

func TestRedeemFailureReasons(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty bank", func(t *testing.T) {
		t.Parallel()
		uc := newUsecase(t, 30)
		if _, err := uc.Redeem(ctx, dto.RedeemInput{Slot: "S09_10", Minutes: 10}); !errors.Is(err, apperrors.ErrBankEmpty) {
			t.Fatalf("error = %v, want ErrBankEmpty", err)
		}
	})

	t.Run("slot full", func(t *testing.T) {
		t.Parallel()
		uc := newUsecase(t, 30)
		if _, err := uc.LogSlot(ctx, dto.LogSlotInput{Slot: "S08_09", Minutes: 60}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := uc.Redeem(ctx, dto.RedeemInput{Slot: "S08_09", Minutes: 10}); !errors.Is(err, apperrors.ErrSlotFull) {
			t.Fatalf("error = %v, want ErrSlotFull", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		t.Parallel()
		uc := newUsecase(t, 30)
		if _, err := uc.Redeem(ctx, dto.RedeemInput{Slot: "S08_09", Minutes: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown slot", func(t *testing.T) {
		t.Parallel()
		uc := newUsecase(t, 30)
		if _, err := uc.Redeem(ctx, dto.RedeemInput{Slot: "S99_00", Minutes: 10}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestBankConservation(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, 30)
	ctx := context.Background()

	deposited, withdrawn := 0, 0
	logs := []struct {
		slot    string
		minutes int
	}{
		{"S08_09", 90}, // banks 60
		{"S09_10", 45}, // banks 15
		{"S10_11", 5},
		{"S11_12", 30},
	}
	for _, l := range logs {
		out, err := uc.LogSlot(ctx, dto.LogSlotInput{Slot: l.slot, Minutes: l.minutes})
		if err != nil {
			t.Fatalf("log %s: %v", l.slot, err)
		}
		deposited += out.BankedMinutes
	}
	redeemed, err := uc.Redeem(ctx, dto.RedeemInput{Slot: "S10_11", Minutes: 100})
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	withdrawn += redeemed.Redeemed

	balance, err := uc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.Minutes != deposited-withdrawn {
		t.Fatalf("balance = %d, want %d", balance.Minutes, deposited-withdrawn)
	}
	if balance.Minutes < 0 {
		t.Fatalf("balance must never go negative, got %d", balance.Minutes)
	}

	// replay the ledger independently
	statement, err := uc.Statement(ctx, dto.StatementInput{Limit: 100})
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	replayed := 0
	for _, tx := range statement {
		switch tx.Type {
		case "deposit":
			replayed += tx.Minutes
		case "withdrawal":
			replayed -= tx.Minutes
		default:
			t.Fatalf("unexpected transaction type %q", tx.Type)
		}
	}
	if replayed != balance.Minutes {
		t.Fatalf("ledger replay = %d, balance = %d", replayed, balance.Minutes)
	}
}

func TestResetClearsGridAndLedger(t *testing.T) {
	t.Parallel()
	uc := newUsecase(t, 30)
	ctx := context.Background()

	if _, err := uc.LogSlot(ctx, dto.LogSlotInput{Slot: "S08_09", Minutes: 50}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := uc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	balance, err := uc.Balance(ctx)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.Minutes != 0 {
		t.Fatalf("balance after reset = %d", balance.Minutes)
	}
	grid, err := uc.DayGrid(ctx, "today")
	if err != nil {
		t.Fatalf("day grid: %v", err)
	}
	if grid.TotalMinutes != 0 {
		t.Fatalf("grid total after reset = %d", grid.TotalMinutes)
	}
}
